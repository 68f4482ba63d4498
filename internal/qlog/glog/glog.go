// Package glog wires github.com/golang/glog in as a qlog.Logger
// backend. Importing this package for its side effect switches
// qlog's default backend over to glog:
//
//	import _ "github.com/insilications/sord-clr/internal/qlog/glog"
package glog

import (
	"github.com/golang/glog"

	"github.com/insilications/sord-clr/internal/qlog"
)

func init() {
	qlog.SetLogger(Logger{})
}

// Logger adapts glog's package-level functions to qlog.Logger.
type Logger struct{}

func (Logger) Infof(format string, args ...interface{})    { glog.Infof(format, args...) }
func (Logger) Warningf(format string, args ...interface{}) { glog.Warningf(format, args...) }
func (Logger) Errorf(format string, args ...interface{})   { glog.Errorf(format, args...) }
