/*package logging holds the process-wide logging mode. Output itself goes
through the standard library's log package.*/
package logging

import (
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"
)

type Flag int

const (
	Nil Flag = iota
	Performance
	Debug
)

// Set once by the command line front end so that library code doesn't need a
// config value threaded through every call.
var (
	Mode Flag = Nil
)

func (f Flag) String() string {
	switch f {
	case Nil:
		return "nil"
	case Performance:
		return "performance"
	case Debug:
		return "debug"
	}
	return fmt.Sprintf("Flag(%d)", int(f))
}

// ParseFlag converts the name of a logging mode into a Flag.
func ParseFlag(s string) (Flag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nil", "none":
		return Nil, nil
	case "performance":
		return Performance, nil
	case "debug":
		return Debug, nil
	}
	return Nil, fmt.Errorf("The logging mode '%s' isn't recognized. Valid "+
		"modes are nil, performance and debug.", s)
}

// MemString returns a string containing various statistics on the current
// memory usage of avo.
func MemString() string {
	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf(
		"Alloc - %d MB; Sys - %d MB Integrated - %d MB",
		ms.Alloc>>20, ms.Sys>>20, ms.TotalAlloc>>20,
	)
}

// Debugf logs only in Debug mode.
func Debugf(format string, args ...interface{}) {
	if Mode == Debug {
		log.Printf(format, args...)
	}
}

// Timer logs the time and memory used by a named stage when the returned
// function is called. It does nothing unless Mode is Performance or Debug.
func Timer(name string) func() {
	if Mode == Nil {
		return func() {}
	}
	t0 := time.Now()
	return func() {
		log.Printf("%s: %s (%s)", name, time.Since(t0), MemString())
	}
}
