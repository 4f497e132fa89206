// Package logging builds the leveled logger shared by the accept
// loop and every connection.
package logging

import (
	"fmt"

	"github.com/astaxie/beego/logs"
)

// Level maps a config level name onto a beego log level.
func Level(name string) (int, error) {
	switch name {
	case "debug":
		return logs.LevelDebug, nil
	case "info":
		return logs.LevelInfo, nil
	case "warn":
		return logs.LevelWarn, nil
	case "error":
		return logs.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// New returns a console logger at `level`.
func New(level string) (*logs.BeeLogger, error) {
	lvl, err := Level(level)
	if err != nil {
		return nil, err
	}
	l := logs.NewLogger()
	if err := l.SetLogger(logs.AdapterConsole, `{"color":false}`); err != nil {
		return nil, err
	}
	l.SetLevel(lvl)
	l.EnableFuncCallDepth(true)
	l.SetLogFuncCallDepth(3)
	return l, nil
}

// Discard returns a logger that drops everything below
// emergency, for tests.
func Discard() *logs.BeeLogger {
	l := logs.NewLogger()
	l.SetLevel(logs.LevelEmergency)
	return l
}
