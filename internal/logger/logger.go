package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Level int

const (
	Info Level = iota
	Warn
	Error
	Fatal
)

type Message struct {
	Timestamp time.Time
	Tag       string
	Message   string
	Level     Level
}

// manager owns the sinks shared by every tagged Logger.
type manager struct {
	console io.Writer
	dev     bool
	logFile *os.File
	logChan chan Message
	done    chan struct{}

	// mu guards logChan against sends after Close.
	mu     sync.RWMutex
	closed bool
}

type Logger struct {
	tag string
	m   *manager
}

var (
	logManager = &manager{}
	once       sync.Once
	closeOnce  sync.Once
)

// InitLogger configures the process-wide sinks. console is usually the tview
// debug console; when nil, dev output goes to the standard logger.
func InitLogger(dev bool, logPath string, console io.Writer) {
	once.Do(func() {
		m := &manager{
			console: console,
			dev:     dev,
		}
		if logPath != "" {
			timestamp := time.Now().Format("20060102_150405")
			fileName := fmt.Sprintf("sentiment_log_%s.log", timestamp)
			filePath := filepath.Join(logPath, fileName)

			file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				log.Fatalf("Failed to open log file: %s", err)
			}
			m.logFile = file
			m.logChan = make(chan Message, 100)
			m.done = make(chan struct{})
			go m.processLogs()
		}
		logManager = m
	})
}

// NewLogger returns a logger writing under tag. Loggers created before
// InitLogger stay silent.
func NewLogger(tag string) *Logger {
	return &Logger{tag: tag, m: logManager}
}

func (m *manager) processLogs() {
	defer close(m.done)
	for msg := range m.logChan {
		timestamp := msg.Timestamp.Format("2006-01-02 15:04:05")
		line := fmt.Sprintf("%s [%s] %s: %s\n", timestamp, msg.Tag, msg.Level, msg.Message)
		m.logFile.WriteString(line)
	}
}

func (l *Logger) log(level Level, message string) {
	m := l.m
	if m.dev {
		if m.console != nil {
			var format string
			switch level {
			case Info:
				format = "[green]DEBUG (%s): %s[-]\n"
			case Warn:
				format = "[yellow]DEBUG (%s): %s[-]\n"
			default:
				format = "[red]DEBUG (%s): %s[-]\n"
			}
			fmt.Fprintf(m.console, format, l.tag, message)
		} else {
			log.Printf("%s (%s): %s", level, l.tag, message)
		}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.logChan != nil && !m.closed {
		m.logChan <- Message{
			Timestamp: time.Now(),
			Tag:       l.tag,
			Message:   message,
			Level:     level,
		}
	}
}

func (l *Logger) Info(v ...interface{}) {
	l.log(Info, sprint(v...))
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.log(Info, fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(v ...interface{}) {
	l.log(Warn, sprint(v...))
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.log(Warn, fmt.Sprintf(format, v...))
}

func (l *Logger) Error(v ...interface{}) {
	l.log(Error, sprint(v...))
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.log(Error, fmt.Sprintf(format, v...))
}

func (l *Logger) Fatal(v ...interface{}) {
	l.log(Fatal, sprint(v...))
	Close()
	os.Exit(1)
}

// Close flushes pending file entries and closes the log file.
func Close() {
	closeOnce.Do(func() {
		m := logManager
		if m.logChan == nil {
			return
		}
		m.mu.Lock()
		m.closed = true
		close(m.logChan)
		m.mu.Unlock()
		<-m.done
		m.logFile.Close()
	})
}

// sprint joins operands with spaces, like log.Println without the newline.
func sprint(v ...interface{}) string {
	s := fmt.Sprintln(v...)
	return s[:len(s)-1]
}

func (l Level) String() string {
	switch l {
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}
