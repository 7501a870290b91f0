// Command sensor simulates a wellhead data acquisition unit. It answers the
// gauge poll command over TCP with a binary frame of float32 channels so the
// ingestion side can be exercised without field hardware.
package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"

	"math/rand"
	"net"
	"time"
)

const (
	PORT          = ":4001"
	CHANNEL_FIRST = 0
	CHANNEL_LAST  = 31 // channel indices 0 ~ 31
)

func main() {
	listener, err := net.Listen("tcp", PORT)
	if err != nil {
		log.Fatal("listen failed:", err)
	}
	defer listener.Close()
	fmt.Println("wellhead gauge simulator listening on 4001...")

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Println("accept failed:", err)
			continue
		}
		go handleConnection(conn)
	}
}

// handleConnection serves repeated polls from one client.
func handleConnection(conn net.Conn) {
	defer func() {
		conn.Close()
	}()

	for {
		// Idle clients are dropped after 5 seconds without a poll.
		err := conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		if err != nil {
			log.Println("set read deadline failed:", err)
			return
		}

		buf := make([]byte, 1024)
		n, err := conn.Read(buf)
		if err != nil {
			log.Println("read failed (client likely disconnected):", err)
			return
		}

		err = conn.SetReadDeadline(time.Time{})
		if err != nil {
			log.Println("clear read deadline failed:", err)
			return
		}

		expected := []byte{0x40, 0xFF, 0x00, 0x00, 0x0D, 0x0A}
		if n < len(expected) || !bytes.Equal(buf[:len(expected)], expected) {
			log.Printf("unexpected command: % X", buf[:n])
			continue
		}

		response := prepareResponse()
		_, err = conn.Write(response)
		if err != nil {
			log.Println("write failed:", err)
			return
		}
		log.Println("poll answered")
	}
}

// prepareResponse builds one protocol frame of simulated readings.
func prepareResponse() []byte {
	var response bytes.Buffer

	// start marker (2 bytes)
	response.Write([]byte{0x40, 0x01})

	// reserved (10 bytes)
	response.Write(make([]byte, 10))

	// channel payload length (2 bytes, big endian)
	channelCount := CHANNEL_LAST - CHANNEL_FIRST + 1
	binary.Write(&response, binary.BigEndian, uint16(channelCount*4))

	readings := make(map[int]float32)
	set := func(key int, baseValue float32) {
		readings[key] = baseValue + (rand.Float32()-0.5)*baseValue*0.05 // ±5% jitter
	}

	set(0, 850.0)  // tubing head pressure (psia)
	set(1, 1100.0) // casing head pressure (psia)
	set(2, 95.0)   // wellhead temperature (°F)
	set(3, 520.0)  // oil rate (STB/d)
	set(4, 110.0)  // water rate (STB/d)
	set(5, 980.0)  // gas rate (Mscf/d)
	set(6, 32.0)   // choke opening (64ths in)
	set(7, 420.0)  // flowline pressure (psia)
	set(8, 88.0)   // flowline temperature (°F)
	set(9, 2450.0) // downhole gauge pressure (psia)
	set(10, 185.0) // downhole gauge temperature (°F)
	set(11, 0.65)  // gas gravity (air=1)
	set(12, 35.0)  // oil gravity (°API)
	set(13, 1.05)  // water gravity
	set(14, 17.5)  // separator pressure (psia)
	set(15, 75.0)  // separator temperature (°F)
	set(16, 0.4)   // sand rate (lb/h)
	set(17, 12.0)  // H2S (ppm)
	set(18, 1.8)   // CO2 (mol %)
	set(19, 99.2)  // uptime (%)
	set(20, 3.1)   // vibration (mm/s)
	set(21, 24.1)  // supply voltage (V)
	// channels 22 ~ 31 are spares and stay 0.0

	var payload bytes.Buffer
	for i := CHANNEL_FIRST; i <= CHANNEL_LAST; i++ {
		val := readings[i] // unset channels default to 0.0
		binary.Write(&payload, binary.LittleEndian, val)
	}
	response.Write(payload.Bytes())

	// checksum (high byte = 1, low byte = sum & 0xFF)
	data := response.Bytes()
	var sum uint16
	for _, b := range data {
		sum += uint16(b)
	}
	response.Write([]byte{0x01, byte(sum & 0xFF)})

	// terminator
	response.Write([]byte{0x0D, 0x0A})

	return response.Bytes()
}
