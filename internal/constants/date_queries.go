package constants

// DateQuery is the relative date range token understood by GET /tasks?filter=.
type DateQuery string

const (
	DateToday DateQuery = "today"
	DateWeek  DateQuery = "week"
	DateMonth DateQuery = "month"
	DateAll   DateQuery = "all"
)

var DateQueries = []DateQuery{DateToday, DateWeek, DateMonth, DateAll}

func (q DateQuery) IsValid() bool {
	switch q {
	case DateToday, DateWeek, DateMonth, DateAll:
		return true
	}
	return false
}

// Next cycles today -> week -> month -> all -> today.
func (q DateQuery) Next() DateQuery {
	for i, candidate := range DateQueries {
		if candidate == q {
			return DateQueries[(i+1)%len(DateQueries)]
		}
	}
	return DateToday
}

func (q DateQuery) Label() string {
	switch q {
	case DateToday:
		return "Today"
	case DateWeek:
		return "This week"
	case DateMonth:
		return "This month"
	case DateAll:
		return "All time"
	}
	return string(q)
}
