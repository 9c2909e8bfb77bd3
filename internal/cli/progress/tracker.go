package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"isolet/internal/cli/output"
)

type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSuccess
	StatusFailed
)

// Item is one challenge being processed.
type Item struct {
	Name     string
	Status   Status
	Duration time.Duration
	Error    error
}

var spinnerFrames = []string{"|", "/", "-", "\\"}

// Tracker reports sequential per-challenge steps. On a terminal the running
// step is a spinner line; elsewhere every start and completion is a
// timestamped line.
type Tracker struct {
	mu          sync.Mutex
	wg          sync.WaitGroup
	items       []Item
	current     int
	verb        string
	writer      io.Writer
	interactive bool
	color       bool
	width       int
	stop        chan struct{}
	stopOnce    sync.Once
	frame       int
	startedAt   time.Time
	now         func() time.Time
}

// NewTracker writes to output.Out and detects whether it is a terminal.
func NewTracker(names []string, verb string) *Tracker {
	interactive, width := detectTerminal(output.Out)
	_, noColor := os.LookupEnv("NO_COLOR")
	return NewTrackerWithWriter(names, verb, output.Out, interactive, interactive && !noColor, width)
}

func NewTrackerWithWriter(names []string, verb string, writer io.Writer, interactive, color bool, width int) *Tracker {
	items := make([]Item, len(names))
	for i, name := range names {
		items[i] = Item{Name: name, Status: StatusPending}
	}
	return &Tracker{
		items:       items,
		current:     -1,
		verb:        verb,
		writer:      writer,
		interactive: interactive,
		color:       color,
		width:       width,
		stop:        make(chan struct{}),
		now:         time.Now,
	}
}

// Start launches the spinner on a terminal.
func (t *Tracker) Start() {
	if t.interactive {
		t.wg.Add(1)
		go t.spin()
	}
}

func (t *Tracker) StartItem(index int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = index
	t.items[index].Status = StatusRunning
	t.startedAt = t.now()

	if !t.interactive {
		fmt.Fprintf(t.writer, "[%s] %s %s %s...\n",
			t.startedAt.Format("15:04:05"), t.counter(index), t.verb, t.items[index].Name)
	}
}

// CompleteItem records the outcome of an item and prints its result line.
// Error details are left to the caller.
func (t *Tracker) CompleteItem(index int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	item := &t.items[index]
	item.Duration = t.now().Sub(t.startedAt)
	item.Status = StatusSuccess
	if err != nil {
		item.Status = StatusFailed
		item.Error = err
	}

	symbol, suffix := t.paint("32", output.SymbolSuccess), formatDuration(item.Duration)
	if err != nil {
		symbol, suffix = t.paint("31", output.SymbolError), formatDuration(item.Duration)+" FAILED"
	}
	if t.interactive {
		fmt.Fprint(t.writer, clearLine)
	}
	fmt.Fprintf(t.writer, "  %s %s  %s  %s\n", symbol, t.paint("2", t.counter(index)), item.Name, t.paint("2", "("+suffix+")"))
}

// Stop ends the spinner and clears its line.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
	t.wg.Wait()

	if t.interactive {
		t.mu.Lock()
		fmt.Fprint(t.writer, clearLine)
		t.mu.Unlock()
	}
}

// Summary counts succeeded and failed items.
func (t *Tracker) Summary() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var total time.Duration
	succeeded, failed := 0, 0
	for _, item := range t.items {
		total += item.Duration
		switch item.Status {
		case StatusSuccess:
			succeeded++
		case StatusFailed:
			failed++
		}
	}

	var parts []string
	if succeeded > 0 {
		parts = append(parts, fmt.Sprintf("%d succeeded", succeeded))
	}
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failed))
	}
	if len(parts) == 0 {
		parts = append(parts, "nothing done")
	}
	return fmt.Sprintf("%s in %s", strings.Join(parts, ", "), formatDuration(total))
}

func (t *Tracker) spin() {
	defer t.wg.Done()
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			if t.current >= 0 && t.items[t.current].Status == StatusRunning {
				t.frame++
				line := fmt.Sprintf("  %s %s  %s %s  %s",
					spinnerFrames[t.frame%len(spinnerFrames)],
					t.counter(t.current),
					t.verb,
					t.items[t.current].Name,
					t.paint("2", formatDuration(t.now().Sub(t.startedAt))),
				)
				fmt.Fprint(t.writer, clearLine+truncate(line, t.width))
			}
			t.mu.Unlock()
		}
	}
}

func (t *Tracker) counter(index int) string {
	return fmt.Sprintf("[%d/%d]", index+1, len(t.items))
}

func (t *Tracker) paint(code, text string) string {
	if !t.color {
		return text
	}
	return "\033[" + code + "m" + text + "\033[0m"
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if minutes := d / time.Minute; minutes > 0 {
		return fmt.Sprintf("%dm %02ds", minutes, (d%time.Minute)/time.Second)
	}
	return fmt.Sprintf("%ds", d/time.Second)
}
