package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// Columns returns db column names of a model in declaration order.
func Columns(model any) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	var res []string
	for i := 0; i < t.NumField(); i++ {
		if db := t.Field(i).Tag.Get("db"); db != "" {
			res = append(res, db)
		}
	}
	return res
}

// Fields returns pointers to db-tagged fields of a model pointer, in
// Columns order. The result can be given to Scan of a row.
func Fields(ptr any) []any {
	v := reflect.ValueOf(ptr).Elem()
	t := v.Type()
	var res []any
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("db") != "" {
			res = append(res, v.Field(i).Addr().Interface())
		}
	}
	return res
}

// Values returns values of db-tagged fields of a model, in Columns order.
func Values(model any) []any {
	v := reflect.Indirect(reflect.ValueOf(model))
	t := v.Type()
	var res []any
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("db") != "" {
			res = append(res, v.Field(i).Interface())
		}
	}
	return res
}

// Employee DDL methods
func (e Employee) TableDDL() string {
	return generateDDL(e, e.TableName())
}

func (e Employee) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_employees_manager ON employees(manager_name);",
		"CREATE INDEX IF NOT EXISTS idx_employees_dl ON employees(dl_name);",
		"CREATE INDEX IF NOT EXISTS idx_employees_dh ON employees(dh_name);",
		"CREATE INDEX IF NOT EXISTS idx_employees_gdl ON employees(gdl_name);",
	}
}

func (e Employee) TableName() string {
	return "employees"
}

// Skill DDL methods
func (s Skill) TableDDL() string {
	return generateDDL(s, s.TableName())
}

func (s Skill) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_skills_employee ON skills(employee_nbk);",
	}
}

func (s Skill) TableName() string {
	return "skills"
}

// TrainingResource DDL methods
func (r TrainingResource) TableDDL() string {
	return generateDDL(r, r.TableName())
}

func (r TrainingResource) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_training_resources_skill ON training_resources(skill_name);",
	}
}

func (r TrainingResource) TableName() string {
	return "training_resources"
}

// AllDDL returns DDL generators for every table, parents first.
func AllDDL() []DDLGenerator {
	return []DDLGenerator{
		Employee{},
		Skill{},
		TrainingResource{},
	}
}
