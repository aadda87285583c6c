package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// DefaultShell interprets benchmark command strings.
const DefaultShell = "/bin/sh"

// DefaultPollInterval is how often the sampler inspects the resident set
// of the running process tree.
const DefaultPollInterval = 50 * time.Millisecond

// Sampler executes one external command to completion and measures it.
type Sampler interface {
	Run(ctx context.Context, command string) (Sample, error)
}

// LaunchError means the command could not be started at all, e.g. the
// shell or binary is missing. It is fatal to the whole trial set.
type LaunchError struct {
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %q: %v", e.Command, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ShellSampler runs a command under a shell and samples wall-clock time,
// peak resident memory (KB) of the process tree, and average CPU
// utilization over the command's lifetime.
//
// A non-zero exit status is not an error: the measurements are still
// returned, since the harness compares performance rather than checking
// correctness.
type ShellSampler struct {
	Shell        string
	PollInterval time.Duration
	Timeout      time.Duration // 0 means wait forever
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
}

func NewShellSampler() *ShellSampler {
	return &ShellSampler{
		Shell:        DefaultShell,
		PollInterval: DefaultPollInterval,
	}
}

func (s *ShellSampler) Run(ctx context.Context, command string) (Sample, error) {
	if strings.TrimSpace(command) == "" {
		return Sample{}, &LaunchError{Command: command, Err: errors.New("empty command")}
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	shell := s.Shell
	if shell == "" {
		shell = DefaultShell
	}
	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return Sample{}, &LaunchError{Command: command, Err: err}
	}

	done := make(chan struct{})
	peakCh := make(chan float64, 1)
	go s.trackPeakRSS(cmd.Process.Pid, done, peakCh)

	waitErr := cmd.Wait()
	elapsed := time.Since(start)
	close(done)
	peakKB := <-peakCh

	if ctxErr := ctx.Err(); ctxErr != nil {
		return Sample{}, fmt.Errorf("command %q aborted: %w", command, ctxErr)
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return Sample{}, fmt.Errorf("waiting for %q: %w", command, waitErr)
		}
		s.logger().Warn("command exited non-zero, recording sample anyway",
			"command", command, "code", exitErr.ExitCode())
	}

	if rss := maxRSSKB(cmd.ProcessState); rss > peakKB {
		peakKB = rss
	}

	var cpu float64
	if elapsed > 0 {
		cpuTime := cmd.ProcessState.UserTime() + cmd.ProcessState.SystemTime()
		cpu = cpuTime.Seconds() / elapsed.Seconds()
	}

	return Sample{
		Seconds:  elapsed.Seconds(),
		MemoryKB: peakKB,
		CPU:      cpu,
	}, nil
}

// trackPeakRSS polls the resident set of pid and its children until done
// is closed, then reports the peak observed, in KB.
func (s *ShellSampler) trackPeakRSS(pid int, done <-chan struct{}, out chan<- float64) {
	interval := s.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var peak float64
	for {
		if rss := treeRSSKB(pid); rss > peak {
			peak = rss
		}
		select {
		case <-done:
			out <- peak
			return
		case <-ticker.C:
		}
	}
}

func treeRSSKB(pid int) float64 {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return 0
	}
	total := rssBytes(proc)
	if children, err := proc.Children(); err == nil {
		for _, c := range children {
			total += rssBytes(c)
		}
	}
	return float64(total) / 1024
}

func rssBytes(p *process.Process) uint64 {
	mi, err := p.MemoryInfo()
	if err != nil || mi == nil {
		return 0
	}
	return mi.RSS
}

func (s *ShellSampler) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
