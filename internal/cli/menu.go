package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/horiagug/yt-transcript-downloader/internal/downloader"
	"github.com/horiagug/yt-transcript-downloader/pkg/yt_transcript_formatters"
)

// Workflows is what the menu drives; satisfied by downloader.Downloader.
type Workflows interface {
	DownloadChannel(ctx context.Context, rawURL string, format yt_transcript_formatters.Format) (downloader.Summary, error)
	DownloadSingle(ctx context.Context, rawURL string, format yt_transcript_formatters.Format) (downloader.Summary, error)
	DownloadFromFile(ctx context.Context, path string, format yt_transcript_formatters.Format) (downloader.Summary, error)
}

// Menu is the blocking interactive loop over stdin/stdout.
type Menu struct {
	in        *bufio.Reader
	out       io.Writer
	workflows Workflows
}

func NewMenu(in io.Reader, out io.Writer, workflows Workflows) *Menu {
	return &Menu{
		in:        bufio.NewReader(in),
		out:       out,
		workflows: workflows,
	}
}

// Run loops until the user chooses to exit or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()

		choice, err := m.promptChoice()
		if err != nil {
			// Input closed; treat like a clean exit.
			return nil
		}

		switch choice {
		case 1:
			url, err := m.prompt("Enter the YouTube channel URL: ")
			if err != nil {
				return nil
			}
			format, err := m.promptFormat()
			if err != nil {
				return nil
			}
			summary, err := m.workflows.DownloadChannel(ctx, url, format)
			if err != nil {
				fmt.Fprintf(m.out, "Could not download channel: %v\n", err)
				continue
			}
			m.printSummary(summary)
		case 2:
			url, err := m.prompt("Enter the YouTube video URL: ")
			if err != nil {
				return nil
			}
			format, err := m.promptFormat()
			if err != nil {
				return nil
			}
			summary, err := m.workflows.DownloadSingle(ctx, url, format)
			if err != nil {
				fmt.Fprintf(m.out, "Could not download video: %v\n", err)
				continue
			}
			m.printSummary(summary)
		case 3:
			path, err := m.prompt("Enter the path to the file containing video URLs: ")
			if err != nil {
				return nil
			}
			format, err := m.promptFormat()
			if err != nil {
				return nil
			}
			summary, err := m.workflows.DownloadFromFile(ctx, path, format)
			if err != nil {
				fmt.Fprintf(m.out, "Could not process file: %v\n", err)
				continue
			}
			m.printSummary(summary)
		case 4:
			fmt.Fprintln(m.out, "\nThank you for using YouTube Transcript Downloader!")
			return nil
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\n=== YouTube Transcript Downloader ===")
	fmt.Fprintln(m.out, "1. Download ALL transcripts from a YouTube channel")
	fmt.Fprintln(m.out, "2. Download transcript from a specific video")
	fmt.Fprintln(m.out, "3. Download transcripts from multiple videos (using a file)")
	fmt.Fprintln(m.out, "4. Exit")
	fmt.Fprintln(m.out, "=====================================")
}

// promptChoice re-prompts without limit until a number between 1 and 4
// comes in.
func (m *Menu) promptChoice() (int, error) {
	for {
		line, err := m.prompt("\nEnter your choice (1-4): ")
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a valid number.")
			continue
		}
		if choice < 1 || choice > 4 {
			fmt.Fprintln(m.out, "Please enter a number between 1 and 4.")
			continue
		}
		return choice, nil
	}
}

// promptFormat asks for the output format before any network activity.
func (m *Menu) promptFormat() (yt_transcript_formatters.Format, error) {
	fmt.Fprintln(m.out, "\nSelect output format:")
	fmt.Fprintln(m.out, "1. JSON")
	fmt.Fprintln(m.out, "2. TXT")
	fmt.Fprintln(m.out, "3. SRT")

	for {
		line, err := m.prompt("Enter your choice (1-3): ")
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > 3 {
			fmt.Fprintln(m.out, "Please enter a number between 1 and 3.")
			continue
		}
		return yt_transcript_formatters.Format(choice), nil
	}
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) printSummary(s downloader.Summary) {
	fmt.Fprintf(m.out, "\nDownload complete: %d successful, %d failed, %d without captions (total %d)\n",
		s.Successful, s.Failed, s.NoCaptions, s.Total)
}
