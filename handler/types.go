package handler

import (
	"mime/multipart"

	"github.com/codevance-sas/Nodal-API/service"
)

type errcode int

const (
	errBadRequest errcode = 10001 + iota
	errInternalServer
)

func (e errcode) String() string {
	switch e {
	case errBadRequest:
		return "invalid request"
	case errInternalServer:
		return "internal server error"
	default:
		return "unknown error"
	}
}

type apiResponse struct {
	Code    errcode `json:"code"`
	Message string  `json:"message"`
	Data    any     `json:"data,omitempty"`
}

func success(data any) apiResponse {
	return apiResponse{
		Code:    0,
		Message: "success",
		Data:    data,
	}
}

func fail(code errcode, message string) apiResponse {
	return apiResponse{
		Code:    code,
		Message: message,
	}
}

type compareRequest struct {
	service.TraverseRequest
	Methods []string `json:"methods,omitempty"`
}

type importSurveysRequest struct {
	File   *multipart.FileHeader `form:"file" binding:"required"`
	WellID string                `form:"wellId" binding:"required"`
}

type listSurveysRequest struct {
	WellID string `form:"wellId" binding:"required"`
}
