// Package schema provides database schema models for skillgap.
// The same models describe rows of the relational stores and the
// records the rollup engine reads.
package schema

import (
	"time"
)

// DDLGenerator defines how Go models generate SQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the SQL table name for this model.
	TableName() string
}

// Employee is a person placed in the management hierarchy.
//
// Hierarchy fields hold the display name of the parent at each level,
// not its NBK. An empty value or an unassigned marker (for example
// "N/A") means there is no parent at that level.
type Employee struct {
	// NBK is the unique and stable employee identifier.
	NBK string `db:"nbk" ddl:"VARCHAR(20) PRIMARY KEY" gorm:"column:nbk;primaryKey;size:20" json:"nbk" yaml:"nbk"`

	// Name is the display name of the employee.
	Name string `db:"name" ddl:"VARCHAR(100) NOT NULL" gorm:"column:name;size:100;not null" json:"name" yaml:"name"`

	Email string `db:"email" ddl:"VARCHAR(120)" gorm:"column:email;size:120" json:"email,omitempty" yaml:"email,omitempty"`

	// Role is the job title, e.g. "Software Engineer".
	Role string `db:"role" ddl:"VARCHAR(100)" gorm:"column:role;size:100" json:"role" yaml:"role"`

	// FunctionName is the business function the employee belongs to.
	FunctionName string `db:"function_name" ddl:"VARCHAR(100)" gorm:"column:function_name;size:100" json:"function" yaml:"function"`

	// PmIc is either "PM" (people manager) or "IC" (individual contributor).
	PmIc string `db:"pm_ic" ddl:"VARCHAR(10)" gorm:"column:pm_ic;size:10" json:"pm_ic" yaml:"pm_ic"`

	ManagerName string `db:"manager_name" ddl:"VARCHAR(100)" gorm:"column:manager_name;size:100;index" json:"manager" yaml:"manager"`
	DLName      string `db:"dl_name" ddl:"VARCHAR(100)" gorm:"column:dl_name;size:100;index" json:"dl" yaml:"dl"`
	DHName      string `db:"dh_name" ddl:"VARCHAR(100)" gorm:"column:dh_name;size:100;index" json:"dh" yaml:"dh"`
	GDLName     string `db:"gdl_name" ddl:"VARCHAR(100)" gorm:"column:gdl_name;size:100;index" json:"gdl" yaml:"gdl"`
}

// Skill is one assessed skill of an employee.
//
// GapCurrent and GapFuture are a materialized copy of the gap classifier
// output. They are written by populate and may be stale if proficiency
// values change afterwards.
type Skill struct {
	// ID is UUID v5 generated from "NBK|SkillName".
	ID string `db:"id" ddl:"VARCHAR(36) PRIMARY KEY" gorm:"column:id;primaryKey;size:36" json:"id,omitempty" yaml:"id,omitempty"`

	// EmployeeNBK is the NBK of the employee owning the skill.
	EmployeeNBK string `db:"employee_nbk" ddl:"VARCHAR(20) NOT NULL" gorm:"column:employee_nbk;size:20;not null;index" json:"nbk" yaml:"nbk"`

	SkillName string `db:"skill_name" ddl:"VARCHAR(100)" gorm:"column:skill_name;size:100" json:"skill" yaml:"skill"`
	SkillType string `db:"skill_type" ddl:"VARCHAR(50)" gorm:"column:skill_type;size:50" json:"type" yaml:"type"`
	Category  string `db:"category" ddl:"VARCHAR(50)" gorm:"column:category;size:50" json:"category" yaml:"category"`

	// CurrentProficiency is the proficiency the employee has now.
	CurrentProficiency string `db:"current_proficiency" ddl:"VARCHAR(50)" gorm:"column:current_proficiency;size:50" json:"current" yaml:"current"`

	// ExpectedCurrentProficiency is what the role expects today.
	ExpectedCurrentProficiency string `db:"expected_current_proficiency" ddl:"VARCHAR(50)" gorm:"column:expected_current_proficiency;size:50" json:"expected_current" yaml:"expected_current"`

	// ExpectedFutureProficiency is what the role will expect.
	ExpectedFutureProficiency string `db:"expected_future_proficiency" ddl:"VARCHAR(50)" gorm:"column:expected_future_proficiency;size:50" json:"expected_future" yaml:"expected_future"`

	GapCurrent string `db:"gap_current" ddl:"VARCHAR(20)" gorm:"column:gap_current;size:20" json:"gap_current,omitempty" yaml:"gap_current,omitempty"`
	GapFuture  string `db:"gap_future" ddl:"VARCHAR(20)" gorm:"column:gap_future;size:20" json:"gap_future,omitempty" yaml:"gap_future,omitempty"`

	LastUpdated time.Time `db:"last_updated" ddl:"TIMESTAMP" gorm:"column:last_updated" json:"last_updated,omitempty" yaml:"last_updated,omitempty"`
}

// TrainingResource is a learning link for a skill at a given tier
// ("New to Role", "In Role Development", "Mastery").
type TrainingResource struct {
	// ID is UUID v5 generated from "SkillName|Tier|URL".
	ID        string `db:"id" ddl:"VARCHAR(36) PRIMARY KEY" gorm:"column:id;primaryKey;size:36" json:"id,omitempty" yaml:"id,omitempty"`
	SkillName string `db:"skill_name" ddl:"VARCHAR(100) NOT NULL" gorm:"column:skill_name;size:100;not null;index" json:"skill" yaml:"skill"`
	Tier      string `db:"tier" ddl:"VARCHAR(50)" gorm:"column:tier;size:50" json:"tier" yaml:"tier"`
	URL       string `db:"url" ddl:"VARCHAR(255)" gorm:"column:url;size:255" json:"url" yaml:"url"`
}
