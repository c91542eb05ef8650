package services

import (
	"fmt"
	"github.com/coopgretz/HomeStorage/internal/config"
	"github.com/sirupsen/logrus"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type LogService struct {
	Log *logrus.Logger
}

func NewLogService(configuration *config.Configuration) LogService {
	log := logrus.New()
	setLogOutputType(configuration, log)
	setLogLevel(configuration, log)
	setLogFormatter(configuration, log)
	return LogService{
		Log: log,
	}
}

func setLogFormatter(configuration *config.Configuration, log *logrus.Logger) {
	switch configuration.Server.LogConfig.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func setLogLevel(configuration *config.Configuration, log *logrus.Logger) {
	level, err := logrus.ParseLevel(strings.ToLower(configuration.Server.LogConfig.Level))
	if err != nil {
		log.WithField("level", configuration.Server.LogConfig.Level).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}

func setLogOutputType(configuration *config.Configuration, log *logrus.Logger) {
	switch configuration.Server.LogConfig.Output {
	case "stdout":
		log.SetOutput(os.Stdout)
	case "file":
		logFolder := strings.TrimRight(configuration.Server.LogConfig.LogPath, "/")
		if logFolder == "" {
			log.Warn("file output requires log_path to be set, logging to stdout")
			return
		}
		logName := fmt.Sprintf("%s-%s.log", "homestorage", time.Now().Format("2006-01-02"))
		file, err := os.OpenFile(filepath.Join(logFolder, logName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal(err)
		}
		log.Out = file
	}
}
