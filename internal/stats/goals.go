package stats

import "fmt"

type Period string

const (
	Week  Period = "week"
	Month Period = "month"
	Year  Period = "year"
)

type Goal struct {
	Period Period
	Label  string
	Hours  int
	Days   int
}

var goals = map[Period]Goal{
	Week: {
		Period: Week,
		Label:  "НЕДЕЛЯ",
		Hours:  12,
		Days:   7,
	},
	Month: {
		Period: Month,
		Label:  "МЕСЯЦ",
		Hours:  50,
		Days:   30,
	},
	Year: {
		Period: Year,
		Label:  "ГОД",
		Hours:  500,
		Days:   365,
	},
}

func GetGoal(p Period) (Goal, bool) {
	g, ok := goals[p]
	return g, ok
}

func Goals() []Goal {
	order := []Period{Week, Month, Year}
	result := make([]Goal, 0, len(order))
	for _, p := range order {
		result = append(result, goals[p])
	}
	return result
}

func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if _, ok := goals[p]; !ok {
		return "", fmt.Errorf("unknown period %q (want week, month or year)", s)
	}
	return p, nil
}
