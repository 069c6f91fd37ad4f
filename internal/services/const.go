package services

import (
	"fmt"
	"time"
)

const (
	CACHE_TTL_5_MINS = 5 * time.Minute
	SESSION_TTL      = 12 * time.Hour
	COMPILE_TIMEOUT  = 60 * time.Second
	TYPESET_LOCK_TTL = 2 * time.Minute
)

func DBKeyAllQuestions() string {
	return "questions:all"
}

func DBKeyRoundQuestions(round int) string {
	return fmt.Sprintf("questions:round:%d", round)
}

func MutexKeyTypesetRound(code string) string {
	return fmt.Sprintf("typeset:round:%s", code)
}
