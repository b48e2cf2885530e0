package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strandkit/strand/pkg/errors"
	"github.com/strandkit/strand/pkg/sequence"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// fileEntry is one selectable sequence file.
type fileEntry struct {
	Name   string
	Format string // detected format, empty if unsupported
}

// FileListModel is the bubbletea model for interactive sequence file
// selection within a directory.
type FileListModel struct {
	Files    []fileEntry
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewFileListModel creates a new file list model.
func NewFileListModel(files []fileEntry) FileListModel {
	return FileListModel{
		Files:  files,
		Height: 15,
	}
}

func (m FileListModel) Init() tea.Cmd {
	return nil
}

func (m FileListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Files)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			f := m.Files[m.Cursor]
			if f.Format == "" {
				return m, nil
			}
			m.Selected = f.Name
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m FileListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Sequence File"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Files) {
		end = len(m.Files)
	}

	for i := m.Offset; i < end; i++ {
		f := m.Files[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		format := f.Format
		if format == "" {
			format = "—"
		}
		line := fmt.Sprintf("%s%-30s  %s", cursor, f.Name, listDimStyle.Render(format))

		switch {
		case i == m.Cursor && f.Format != "":
			b.WriteString(listSelectedStyle.Render(line))
		case f.Format == "":
			b.WriteString(listDimStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Files))))

	return b.String()
}

// pickSequenceFile lists the sequence files in dir and lets the user
// choose one. A single supported file is returned without prompting.
func pickSequenceFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "read directory %s", dir)
	}

	var files []fileEntry
	supported := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		entry := fileEntry{Name: e.Name()}
		if p, err := sequence.Detect(e.Name()); err == nil {
			entry.Format = p.Type()
			supported++
		}
		files = append(files, entry)
	}
	if supported == 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "no sequence files in %s", dir)
	}
	if supported == 1 && len(files) == 1 {
		return filepath.Join(dir, files[0].Name), nil
	}

	final, err := tea.NewProgram(NewFileListModel(files)).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(FileListModel)
	if !ok || m.Selected == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "no file selected")
	}
	return filepath.Join(dir, m.Selected), nil
}
