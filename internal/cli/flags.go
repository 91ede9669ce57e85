package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/query"
)

// taskQueryFlags collects the shared flags that translate into a query spec
// for task listings and the board.
type taskQueryFlags struct {
	status    string
	priority  string
	assignee  string
	tag       string
	search    string
	sortKey   string
	dueBefore string
	dueAfter  string
}

func (f *taskQueryFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.status, "status", "", "Filter by status (backlog|todo|in_progress|review|done)")
	fs.StringVar(&f.priority, "priority", "", "Filter by priority (urgent|high|medium|low)")
	fs.StringVar(&f.assignee, "assignee", "", "Filter by assignee (name, email, or id)")
	fs.StringVar(&f.tag, "tag", "", "Filter by tag")
	fs.StringVar(&f.search, "search", "", "Search titles and descriptions")
	fs.StringVar(&f.sortKey, "sort", "", "Sort key (priority|due_date|created|updated|assignee)")
	fs.StringVar(&f.dueBefore, "due-before", "", "Only tasks due on or before this date (YYYY-MM-DD)")
	fs.StringVar(&f.dueAfter, "due-after", "", "Only tasks due on or after this date (YYYY-MM-DD)")
}

// toSpec builds a query spec from the flags. Status and priority values are
// normalized the same way imported data is, so "IN_PROGRESS" and
// "in-progress" both work.
func (f *taskQueryFlags) toSpec(ws *workspace) (query.Spec, error) {
	spec := query.Spec{
		Search:  f.search,
		Filters: map[string]query.Filter{},
		Sort:    query.SortKey(f.sortKey),
	}

	if f.status != "" {
		spec.Filters["status"] = query.Filter{Equals: string(domain.NormalizeTaskStatus(f.status))}
	}
	if f.priority != "" {
		spec.Filters["priority"] = query.Filter{Equals: string(domain.NormalizePriority(f.priority))}
	}
	if f.tag != "" {
		spec.Filters["tag"] = query.Filter{Has: f.tag}
	}
	if f.assignee != "" {
		userID, err := ws.resolveUser(f.assignee)
		if err != nil {
			return query.Spec{}, err
		}
		spec.Filters["assignee"] = query.Filter{Has: userID}
	}

	if f.dueBefore != "" || f.dueAfter != "" {
		r := &query.Range{}
		if f.dueAfter != "" {
			start, err := time.Parse("2006-01-02", f.dueAfter)
			if err != nil {
				return query.Spec{}, fmt.Errorf("invalid --due-after date %q: %w", f.dueAfter, err)
			}
			r.Start = &start
		}
		if f.dueBefore != "" {
			end, err := time.Parse("2006-01-02", f.dueBefore)
			if err != nil {
				return query.Spec{}, fmt.Errorf("invalid --due-before date %q: %w", f.dueBefore, err)
			}
			// Make the bound inclusive of the whole day.
			end = end.Add(24*time.Hour - time.Nanosecond)
			r.End = &end
		}
		spec.Filters["due_date"] = query.Filter{Range: r}
	}

	return spec, nil
}
