package conf

import (
	"log"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func InitConf(path string) {
	Conf = viper.New()
	Conf.SetConfigFile(path)

	Conf.SetDefault("server.port", 12581)
	Conf.SetDefault("frontend.host", "http://localhost:3000")
	Conf.SetDefault("solver.step_tolerance", 1e-4)
	Conf.SetDefault("solver.step_max_iterations", 20)
	Conf.SetDefault("solver.zfactor_tolerance", 1e-6)
	Conf.SetDefault("solver.zfactor_max_iterations", 30)

	if err := Conf.ReadInConfig(); err != nil {
		log.Printf("read config %s failed, using defaults: %v", path, err)
		return
	}

	Conf.WatchConfig()
	Conf.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("config file changed: %s", e.Name)
	})
}
