package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/ytget/ytpick/internal/model"
)

// ProgressPrinter renders task updates as a single rewritten terminal line
// per task
type ProgressPrinter struct {
	out io.Writer
	loc *Localization
}

// NewProgressPrinter creates a progress printer
func NewProgressPrinter(out io.Writer, loc *Localization) *ProgressPrinter {
	return &ProgressPrinter{out: out, loc: loc}
}

// Update redraws the line for task, ending it once the task is finished
func (p *ProgressPrinter) Update(task *model.DownloadTask) {
	fmt.Fprint(p.out, "\r"+p.formatLine(task)+ClearToEndOfLine)
	if task.Status.IsFinished() {
		fmt.Fprintln(p.out)
	}
}

func (p *ProgressPrinter) formatLine(task *model.DownloadTask) string {
	line := fmt.Sprintf(ProgressLineFormat, task.Index, task.BatchSize, task.GetDisplayTitle(), task.Percent)

	var details []string
	switch {
	case task.Status == model.TaskStatusCompleted:
		details = append(details, p.loc.GetText(KeyTaskDone))
	case task.Status == model.TaskStatusError:
		details = append(details, p.loc.GetText(KeyTaskFailed))
	case task.Status.IsActive():
		if task.Speed != "" {
			details = append(details, task.Speed)
		}
		if task.ETASec > 0 {
			details = append(details, p.loc.GetText(KeyETA)+" "+task.GetETAString())
		}
	}

	if len(details) == 0 {
		return line
	}
	return line + MiddleDotSeparator + strings.Join(details, MiddleDotSeparator)
}
