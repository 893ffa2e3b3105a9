package iotesting

import (
	"testing"

	"github.com/gnames/skillgap/internal/iomemory"
	"github.com/gnames/skillgap/pkg/schema"
	"gopkg.in/yaml.v3"
)

// RecordsYAML is a small firm.
//
//	Jessica Pearson (GDL)
//	└── Daniel Hardman (DH)
//	    ├── Robert Zane (DL)
//	    │   ├── Harvey Specter: mr002 (2 gaps), rz003 (0), dp004 (1)
//	    │   └── Louis Litt: kb005 (1), hg006 (0)
//	    └── Travis Tanner (DL)
//	        └── Louis Litt: jm007 (1)
//
// Louis Litt has reports under two DLs. jp001 has no parents at all.
// dp004 has one skill with an invalid proficiency.
const RecordsYAML = `employees:
  - nbk: jp001
    name: Jessica Pearson
    role: Managing Partner
    function: Legal
    pm_ic: PM
    manager: N/A
    dl: N/A
    dh: unassigned
    gdl: ""
  - nbk: mr002
    name: Mike Ross
    role: Associate
    function: Legal
    pm_ic: IC
    manager: Harvey Specter
    dl: Robert Zane
    dh: Daniel Hardman
    gdl: Jessica Pearson
  - nbk: rz003
    name: Rachel Zane
    role: Paralegal
    function: Legal
    pm_ic: IC
    manager: Harvey Specter
    dl: Robert Zane
    dh: Daniel Hardman
    gdl: Jessica Pearson
  - nbk: dp004
    name: Donna Paulsen
    role: Legal Secretary
    function: Operations
    pm_ic: IC
    manager: Harvey Specter
    dl: Robert Zane
    dh: Daniel Hardman
    gdl: Jessica Pearson
  - nbk: kb005
    name: Katrina Bennett
    role: Associate
    function: Legal
    pm_ic: IC
    manager: Louis Litt
    dl: Robert Zane
    dh: Daniel Hardman
    gdl: Jessica Pearson
  - nbk: hg006
    name: Harold Gunderson
    role: Associate
    function: Legal
    pm_ic: IC
    manager: Louis Litt
    dl: Robert Zane
    dh: Daniel Hardman
    gdl: Jessica Pearson
  - nbk: jm007
    name: Jeff Malone
    role: Partner
    function: Securities
    pm_ic: IC
    manager: Louis Litt
    dl: Travis Tanner
    dh: Daniel Hardman
    gdl: Jessica Pearson
skills:
  - {nbk: jp001, skill: Leadership, type: Soft, category: Management, current: "5", expected_current: "5", expected_future: "5"}
  - {nbk: mr002, skill: Research, type: Core, category: Legal, current: "3", expected_current: "4", expected_future: "5"}
  - {nbk: mr002, skill: Negotiation, type: Core, category: Legal, current: "2", expected_current: "3", expected_future: "4"}
  - {nbk: mr002, skill: Litigation, type: Core, category: Legal, current: "3", expected_current: "3", expected_future: "4"}
  - {nbk: mr002, skill: Memory, type: Soft, category: General, current: "5", expected_current: "4", expected_future: "4"}
  - {nbk: mr002, skill: Drafting, type: Core, category: Legal, current: "3", expected_current: "3", expected_future: "3"}
  - {nbk: rz003, skill: Research, type: Core, category: Legal, current: "4", expected_current: "4", expected_future: "4"}
  - {nbk: rz003, skill: Drafting, type: Core, category: Legal, current: "4", expected_current: "3", expected_future: "4"}
  - {nbk: dp004, skill: Scheduling, type: Soft, category: Operations, current: Expert, expected_current: Expert, expected_future: Master}
  - {nbk: dp004, skill: Filing, type: Core, category: Operations, current: "2", expected_current: "3", expected_future: "3"}
  - {nbk: dp004, skill: Intuition, type: Soft, category: General, current: Guru, expected_current: "3", expected_future: "3"}
  - {nbk: kb005, skill: Litigation, type: Core, category: Legal, current: "2", expected_current: "3", expected_future: "4"}
  - {nbk: kb005, skill: Research, type: Core, category: Legal, current: "3", expected_current: "3", expected_future: ""}
  - {nbk: hg006, skill: Research, type: Core, category: Legal, current: "1", expected_current: "1", expected_future: "2"}
  - {nbk: jm007, skill: Compliance, type: Core, category: Securities, current: "2", expected_current: "3", expected_future: "3"}
training_resources:
  - {skill: Research, tier: Mastery, url: "https://learn.example.com/research-advanced"}
  - {skill: Research, tier: New to Role, url: "https://learn.example.com/research-101"}
  - {skill: Negotiation, tier: In Role Development, url: "https://learn.example.com/negotiation"}
`

// Records returns the normalized fixture records.
func Records(t *testing.T) *schema.Records {
	t.Helper()

	var res schema.Records
	if err := yaml.Unmarshal([]byte(RecordsYAML), &res); err != nil {
		t.Fatalf("Failed to decode fixture records: %v", err)
	}
	if err := res.Normalize(); err != nil {
		t.Fatalf("Failed to normalize fixture records: %v", err)
	}
	return &res
}

// MemoryStore returns a memory store loaded with the fixture records.
func MemoryStore(t *testing.T) *iomemory.Store {
	t.Helper()
	return iomemory.New(Records(t))
}
