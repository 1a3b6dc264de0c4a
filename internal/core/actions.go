package core

import "strings"

// Action tags the kind of mutation an audit log entry records. The tag
// is stored as text and selects the message template used to replay the
// entry.
type Action string

const (
	StartPeriod      Action = "START_PERIOD"
	EndPeriod        Action = "END_PERIOD"
	AddIncome        Action = "ADD_INCOME"
	AddExpense       Action = "ADD_EXPENSE"
	UpdateEstimate   Action = "UPDATE_ESTIMATE"
	RenameEstimate   Action = "RENAME_ESTIMATE"
	RemoveExpense    Action = "REMOVE_EXPENSE"
	Spend            Action = "SPEND"
	OverrideSpending Action = "OVERRIDE_SPENDING"
)

// templates maps every action to its replay message. Adding an action
// means adding a template here as well.
var templates = map[Action]string{
	StartPeriod:      "Started a new period. (#%1)",
	EndPeriod:        "Ended period #%1.",
	AddIncome:        "Added income of %2 : %1.",
	AddExpense:       "Added expense : %1 : estimated %2, spent %3.",
	UpdateEstimate:   "Updated expense %1 : new estimate of %2.",
	RenameEstimate:   "Renamed expense %1 to %2.",
	RemoveExpense:    "Removed expense %1.",
	Spend:            "Spent %2 on %1.",
	OverrideSpending: "Set spending of %2 on %1.",
}

// Message substitutes the log's parameters into its action template.
// Absent parameters substitute as empty strings. Unknown actions render
// as an empty message.
func (l Log) Message() string {
	msg := templates[l.Action]
	msg = strings.ReplaceAll(msg, "%1", l.Args[0])
	msg = strings.ReplaceAll(msg, "%2", l.Args[1])
	msg = strings.ReplaceAll(msg, "%3", l.Args[2])
	return msg
}
