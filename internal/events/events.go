// Package events publishes table-change notifications so clients can refresh
// their views when another session writes to the same tenant.
//
// Changes travel over NATS on the subject
//
//	changes.{tenant_id}.{table}
//
// and carry a JSON encoded Change. Publishing is best effort: a failed publish
// is logged and never fails the write that produced it.
package events

import (
	"errors"
	"strings"
	"time"
)

// Operation is the kind of write that produced a change.
type Operation string

const (
	OpInsert Operation = "INSERT"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
)

// Watched tables.
const (
	TableCosts              = "costs"
	TableAccountsPayable    = "accounts_payable"
	TableRecurringExpenses  = "recurring_expenses"
	TableSalaries           = "salaries"
	TableCustomers          = "customers"
	TableVehicles           = "vehicles"
	TableDrivers            = "drivers"
	TableDriverAssignments  = "driver_assignments"
	TableFines              = "fines"
	TableInspectionDamages  = "inspection_damages"
	TableServiceNotes       = "service_notes"
	TableDamageNotification = "damage_notifications"
	TableFinancialSummary   = "financial_summary"
)

// Change describes one row-level write.
type Change struct {
	TenantID  string    `json:"tenant_id"`
	Table     string    `json:"table"`
	Operation Operation `json:"operation"`
	RecordID  string    `json:"record_id,omitempty"`
	At        time.Time `json:"at"`
}

// NewChange builds a Change stamped with the current time.
func NewChange(tenantID, table string, op Operation, recordID string) Change {
	return Change{
		TenantID:  tenantID,
		Table:     table,
		Operation: op,
		RecordID:  recordID,
		At:        time.Now().UTC(),
	}
}

// Filter decides whether a subscriber receives a change. A nil Filter accepts everything.
type Filter func(Change) bool

// RecordFilter accepts only changes to the given record.
func RecordFilter(recordID string) Filter {
	return func(c Change) bool { return c.RecordID == recordID }
}

// Publisher emits changes after a write commits.
type Publisher interface {
	Publish(changes ...Change)
}

// Subscription is an active subscription.
type Subscription interface {
	Unsubscribe() error
}

// Subscriber delivers changes for a tenant's tables. An empty table list watches every table.
type Subscriber interface {
	Subscribe(tenantID string, tables []string, filter Filter, fn func(Change)) (Subscription, error)
}

// Bus is both ends of the change feed.
type Bus interface {
	Publisher
	Subscriber
}

// ErrUnavailable is returned by Subscribe when no broker is configured.
var ErrUnavailable = errors.New("change feed unavailable")

// Subject returns the NATS subject for a tenant table. An empty table yields the tenant wildcard.
func Subject(tenantID, table string) string {
	if table == "" {
		table = "*"
	}
	return "changes." + tenantID + "." + table
}

// ParseTables splits a comma separated table list, dropping blanks.
func ParseTables(s string) []string {
	var tables []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tables = append(tables, t)
		}
	}
	return tables
}

// NopBus drops every change. It is used when NATS is not configured.
type NopBus struct{}

// Publish implements Publisher.
func (NopBus) Publish(...Change) {}

// Subscribe implements Subscriber.
func (NopBus) Subscribe(string, []string, Filter, func(Change)) (Subscription, error) {
	return nil, ErrUnavailable
}
