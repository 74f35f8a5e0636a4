package logger

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestDefault(t *testing.T) {
	l := Default("ipc")
	if l.GetPrefix() != "ipc" {
		t.Errorf("prefix %q", l.GetPrefix())
	}
}

func TestNewWithConfig(t *testing.T) {
	l := NewWithConfig("cfg", log.DebugLevel, true, true, log.JSONFormatter)
	if l.GetPrefix() != "cfg" {
		t.Errorf("prefix %q", l.GetPrefix())
	}
	if l.GetLevel() != log.DebugLevel {
		t.Errorf("level %v", l.GetLevel())
	}
}
