package rollup

import (
	"fmt"
	"strings"

	"github.com/gnames/skillgap/pkg/schema"
)

// Level is a rank of the management hierarchy.
type Level int

const (
	// Employee is the leaf level. It is not a rollup level.
	Employee Level = iota
	// Manager is a people manager with direct reports.
	Manager
	// DL is a Delivery Lead, a parent of managers.
	DL
	// DH is a Delivery Head, a parent of delivery leads.
	DH
	// GDL is a Group Delivery Lead, the top of the hierarchy.
	GDL
)

var levelNames = []string{"employee", "manager", "dl", "dh", "gdl"}

var levelLabels = []string{
	"Employee", "Manager", "Delivery Lead",
	"Delivery Head", "Group Delivery Lead",
}

func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l]
}

// Label returns the human-readable title of the level.
func (l Level) Label() string {
	if !l.valid() {
		return "Unknown"
	}
	return levelLabels[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(bs []byte) error {
	res, ok := ParseLevel(string(bs))
	if !ok {
		return fmt.Errorf("unknown hierarchy level '%s'", bs)
	}
	*l = res
	return nil
}

func (l Level) valid() bool {
	return l >= Employee && l <= GDL
}

// Parent returns the level right above. GDL has no parent and returns
// itself with false.
func (l Level) Parent() (Level, bool) {
	if l >= GDL || !l.valid() {
		return l, false
	}
	return l + 1, true
}

// Name returns the name the employee declares for this level: the
// employee's own name for Employee, the manager name for Manager and so on.
func (l Level) Name(e schema.Employee) string {
	switch l {
	case Employee:
		return e.Name
	case Manager:
		return e.ManagerName
	case DL:
		return e.DLName
	case DH:
		return e.DHName
	case GDL:
		return e.GDLName
	}
	return ""
}

// ParseLevel converts user input to a Level. It accepts short names
// ("dl"), full titles ("delivery-lead", "Delivery Lead") and "mgr".
func ParseLevel(s string) (Level, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.NewReplacer(" ", "-", "_", "-").Replace(v)
	switch v {
	case "employee", "emp":
		return Employee, true
	case "manager", "mgr":
		return Manager, true
	case "dl", "delivery-lead":
		return DL, true
	case "dh", "delivery-head":
		return DH, true
	case "gdl", "group-delivery-lead":
		return GDL, true
	}
	return Employee, false
}
