package domain

import "strings"

// IssueCategory classifies a problem report.
type IssueCategory string

const (
	IssueDelay   IssueCategory = "DELAY"
	IssueVehicle IssueCategory = "VEHICLE"
	IssueDriver  IssueCategory = "DRIVER"
	IssuePayment IssueCategory = "PAYMENT"
	IssueOther   IssueCategory = "OTHER"
)

// ParseIssueCategory validates a user-supplied category.
func ParseIssueCategory(s string) (IssueCategory, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DELAY":
		return IssueDelay, nil
	case "VEHICLE":
		return IssueVehicle, nil
	case "DRIVER":
		return IssueDriver, nil
	case "PAYMENT":
		return IssuePayment, nil
	case "OTHER":
		return IssueOther, nil
	default:
		return "", ValidationError{Field: "category", Msg: "unknown issue category"}
	}
}
