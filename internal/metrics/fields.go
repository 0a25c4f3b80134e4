package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrDataset  = "dataset"
)

// Dataset names used with RecordDatasetRefresh.
const (
	DatasetStandings  = "standings"
	DatasetScoreboard = "scoreboard"
	DatasetBracket    = "bracket"
)
