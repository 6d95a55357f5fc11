package internal

import (
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var numericInput = regexp.MustCompile(`^[0-9.]+$`)

func defineGlobals(e *env) {
	defineClock(e)
	defineInput(e)
}

func defineClock(e *env) {
	e.define("clock", &nativeFn{
		arityValue: 0,
		callFn: func(exec *exec, arguments []interface{}) interface{} {
			return loxNumber(float64(time.Now().UnixNano()) / float64(time.Second))
		},
	})
}

// defineInput binds input(), which reads one line from the session input.
// Lines made only of digits and dots come back as numbers when they parse,
// anything else as the raw string. End of input yields nil.
func defineInput(e *env) {
	e.define("input", &nativeFn{
		arityValue: 0,
		callFn: func(exec *exec, arguments []interface{}) interface{} {
			if exec.input == nil {
				return nil
			}
			line, err := exec.input.ReadString('\n')
			if err != nil && (err != io.EOF || line == "") {
				return nil
			}
			line = strings.TrimRight(line, "\r\n")
			if numericInput.MatchString(line) {
				if num, err := strconv.ParseFloat(line, 64); err == nil {
					return loxNumber(num)
				}
			}
			return loxString(line)
		},
	})
}
