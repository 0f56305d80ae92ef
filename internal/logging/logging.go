// Package logging настраивает глобальный logrus для бинарников
package logging

import (
	log "github.com/sirupsen/logrus"
)

// Setup включает текстовый формат с временем. Неизвестный уровень дает info.
func Setup(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
