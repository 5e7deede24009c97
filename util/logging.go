package util

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
)

var LoggingEnabled = false

// LogEndpoint, when set, also receives every trace message as a POST body.
var LogEndpoint = ""

// stdout carries the language server protocol, so traces go to stderr
var traceLogger = log.New(os.Stderr, "skree: ", log.LstdFlags)

func LogF(format string, args ...interface{}) {
	if !LoggingEnabled {
		return
	}
	message := fmt.Sprintf(format, args...)
	traceLogger.Println(message)
	if LogEndpoint != "" {
		go func() {
			resp, err := http.Post(LogEndpoint, "text/plain", strings.NewReader(message))
			if err != nil {
				return
			}
			resp.Body.Close()
		}()
	}
}
