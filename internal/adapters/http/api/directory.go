package api

import (
	"html/template"
	"net/http"

	"github.com/floorcraft/danceboard/internal/domain/filter"
)

// DirectoryHandler renders the filtered view as a server-side HTML table.
// It accepts the same five query parameters as /api/events.
type DirectoryHandler struct {
	deps Dependencies
	tmpl *template.Template
}

// NewDirectoryHandler creates a new directory handler.
func NewDirectoryHandler(deps Dependencies) *DirectoryHandler {
	return &DirectoryHandler{
		deps: deps,
		tmpl: template.Must(template.New("directory").Parse(directoryHTML)),
	}
}

type directoryRow struct {
	Name      string
	StartDate string
	EndDate   string
	Location  string
	Link      string
	HasLink   bool
}

type directoryPage struct {
	Filter filter.Filter
	Rows   []directoryRow
	Total  int
}

// HandleDirectory handles GET /directory requests.
func (h *DirectoryHandler) HandleDirectory(w http.ResponseWriter, r *http.Request) {
	const op = "api.directory"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	f := queryFilter(r.URL.Query())
	visible := h.deps.Visible(r.Context(), f)

	page := directoryPage{
		Filter: f,
		Rows:   make([]directoryRow, 0, len(visible)),
		Total:  len(h.deps.Events(r.Context())),
	}
	for _, e := range visible {
		row := directoryRow{
			Name:      e.Name,
			StartDate: e.StartDate,
			EndDate:   e.EndDate,
			Location:  e.Location,
		}
		row.Link, row.HasLink = e.ActionableURL()
		page.Rows = append(page.Rows, row)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, page); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}

const directoryHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Dance Event Directory</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f2f2f2; }
form input { margin-right: 0.5rem; }
</style>
</head>
<body>
<h1>Dance Event Directory</h1>
<form method="get" action="/directory">
	<input type="text" name="name" placeholder="Name" value="{{.Filter.Name}}">
	<input type="text" name="start_date" placeholder="Start date" value="{{.Filter.StartDate}}">
	<input type="text" name="end_date" placeholder="End date" value="{{.Filter.EndDate}}">
	<input type="text" name="location" placeholder="Location" value="{{.Filter.Location}}">
	<input type="text" name="url" placeholder="URL" value="{{.Filter.URL}}">
	<button type="submit">Filter</button>
</form>
<p>{{len .Rows}} of {{.Total}} events</p>
<table>
<thead>
<tr><th>Name</th><th>Start</th><th>End</th><th>Location</th><th>Link</th></tr>
</thead>
<tbody>
{{range .Rows}}
<tr>
	<td>{{.Name}}</td>
	<td>{{.StartDate}}</td>
	<td>{{.EndDate}}</td>
	<td>{{.Location}}</td>
	<td>{{if .HasLink}}<a href="{{.Link}}" target="_blank" rel="noopener">event page</a>{{end}}</td>
</tr>
{{else}}
<tr><td colspan="5">No events found.</td></tr>
{{end}}
</tbody>
</table>
</body>
</html>
`
