package server

import (
	"html/template"
	"log"
	"net/http"

	"github.com/wask-game/wask/leaderboard"
)

type pageRow struct {
	Rank   int
	Class  string
	Medal  string
	Record leaderboard.Record
}

var pageTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<title>WASK Leaderboard</title>
<style>
body { font-family: Arial, sans-serif; background: #111; color: #eee; }
h1 { text-align: center; }
table { border-collapse: collapse; margin: 20px auto; width: 80%; max-width: 900px; }
th, td { border: 1px solid #555; padding: 8px 12px; text-align: center; }
th { background: #222; }
tr.normal-row { background: #151515; }
tr.gold { background: #4d3b00; }
tr.silver { background: #3b3f4d; }
tr.bronze { background: #4d2f21; }
tr.gold td, tr.silver td, tr.bronze td { font-weight: bold; }
</style>
</head>
<body>
<h1>WASK Leaderboard</h1>
<table>
<tr><th>#</th><th>Name</th><th>Time (s)</th><th>Result</th><th>Submitted</th></tr>
{{range .}}<tr class="{{.Class}}">
<td>{{.Medal}}{{.Rank}}</td>
<td>{{.Record.Name}}</td>
<td>{{printf "%.2f" .Record.TimeS}}</td>
<td>{{.Record.Outcome}}</td>
<td>{{.Record.Timestamp}}</td>
</tr>
{{end}}</table>
<p style="text-align:center;">Play more to climb the leaderboard!</p>
</body>
</html>
`))

var podium = []struct{ class, medal string }{
	{"gold", "🥇 "},
	{"silver", "🥈 "},
	{"bronze", "🥉 "},
}

func buildRows(records []leaderboard.Record) []pageRow {
	rows := make([]pageRow, 0, len(records))
	for i, rec := range records {
		row := pageRow{Rank: i + 1, Class: "normal-row", Record: rec}
		if i < len(podium) {
			row.Class = podium[i].class
			row.Medal = podium[i].medal
		}
		rows = append(rows, row)
	}
	return rows
}

// Index renders the leaderboard as an HTML table.
func Index(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplate.Execute(w, buildRows(store.List())); err != nil {
			log.Printf("[leaderboard] render error: %v", err)
		}
	}
}
