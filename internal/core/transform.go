package core

// transform.go maps between flat CSV rows and the nested user records the
// API works with.
//
// Every user carries a common profile; students, teachers, parents and
// staff additionally carry one role-specific block. Each column is declared
// once in a userField with a getter and a setter so both directions stay
// in sync. Dates become *time.Time on the way in and YYYY-MM-DD on the way
// out; list columns are ';' separated.

import (
	"strings"
	"time"
)

// User roles that have a role-specific block.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleParent  = "parent"
	RoleStaff   = "staff"
)

// listSeparator separates values inside list columns such as subjects.
const listSeparator = ";"

// Address is a postal address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Profile holds the fields every user has.
type Profile struct {
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Phone       string     `json:"phone"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Address     Address    `json:"address"`
}

// StudentData is the student-specific block.
type StudentData struct {
	AdmissionNumber string     `json:"admissionNumber"`
	RollNumber      string     `json:"rollNumber"`
	Class           string     `json:"class"`
	Section         string     `json:"section"`
	AdmissionDate   *time.Time `json:"admissionDate,omitempty"`
	BloodGroup      string     `json:"bloodGroup"`
	GuardianName    string     `json:"guardianName"`
	GuardianPhone   string     `json:"guardianPhone"`
}

// TeacherData is the teacher-specific block.
type TeacherData struct {
	EmployeeID     string     `json:"employeeId"`
	Qualification  string     `json:"qualification"`
	Specialization string     `json:"specialization"`
	Experience     string     `json:"experience"`
	JoiningDate    *time.Time `json:"joiningDate,omitempty"`
	Subjects       []string   `json:"subjects"`
}

// ParentData is the parent-specific block.
type ParentData struct {
	Occupation               string   `json:"occupation"`
	Relation                 string   `json:"relation"`
	ChildrenAdmissionNumbers []string `json:"childrenAdmissionNumbers"`
}

// StaffData is the staff-specific block.
type StaffData struct {
	EmployeeID  string     `json:"employeeId"`
	Designation string     `json:"designation"`
	Department  string     `json:"department"`
	JoiningDate *time.Time `json:"joiningDate,omitempty"`
}

// User is the nested record exchanged with the API.
type User struct {
	Email       string       `json:"email"`
	Role        string       `json:"role"`
	Profile     Profile      `json:"profile"`
	StudentData *StudentData `json:"studentData,omitempty"`
	TeacherData *TeacherData `json:"teacherData,omitempty"`
	ParentData  *ParentData  `json:"parentData,omitempty"`
	StaffData   *StaffData   `json:"staffData,omitempty"`
}

// userField binds one CSV column to a User field.
type userField struct {
	header string
	get    func(u *User) string
	set    func(u *User, v string)
}

var commonFields = []userField{
	{"firstName", func(u *User) string { return u.Profile.FirstName }, func(u *User, v string) { u.Profile.FirstName = v }},
	{"lastName", func(u *User) string { return u.Profile.LastName }, func(u *User, v string) { u.Profile.LastName = v }},
	{"email", func(u *User) string { return u.Email }, func(u *User, v string) { u.Email = v }},
	{"phone", func(u *User) string { return u.Profile.Phone }, func(u *User, v string) { u.Profile.Phone = v }},
	{"gender", func(u *User) string { return u.Profile.Gender }, func(u *User, v string) { u.Profile.Gender = v }},
	{"dateOfBirth", func(u *User) string { return FormatDate(u.Profile.DateOfBirth) }, func(u *User, v string) { u.Profile.DateOfBirth = parseOptionalDate(v) }},
	{"street", func(u *User) string { return u.Profile.Address.Street }, func(u *User, v string) { u.Profile.Address.Street = v }},
	{"city", func(u *User) string { return u.Profile.Address.City }, func(u *User, v string) { u.Profile.Address.City = v }},
	{"state", func(u *User) string { return u.Profile.Address.State }, func(u *User, v string) { u.Profile.Address.State = v }},
	{"zipCode", func(u *User) string { return u.Profile.Address.ZipCode }, func(u *User, v string) { u.Profile.Address.ZipCode = v }},
	{"country", func(u *User) string { return u.Profile.Address.Country }, func(u *User, v string) { u.Profile.Address.Country = v }},
}

var roleFields = map[string][]userField{
	RoleStudent: {
		{"admissionNumber", func(u *User) string { return u.student().AdmissionNumber }, func(u *User, v string) { u.student().AdmissionNumber = v }},
		{"rollNumber", func(u *User) string { return u.student().RollNumber }, func(u *User, v string) { u.student().RollNumber = v }},
		{"class", func(u *User) string { return u.student().Class }, func(u *User, v string) { u.student().Class = v }},
		{"section", func(u *User) string { return u.student().Section }, func(u *User, v string) { u.student().Section = v }},
		{"admissionDate", func(u *User) string { return FormatDate(u.student().AdmissionDate) }, func(u *User, v string) { u.student().AdmissionDate = parseOptionalDate(v) }},
		{"bloodGroup", func(u *User) string { return u.student().BloodGroup }, func(u *User, v string) { u.student().BloodGroup = v }},
		{"guardianName", func(u *User) string { return u.student().GuardianName }, func(u *User, v string) { u.student().GuardianName = v }},
		{"guardianPhone", func(u *User) string { return u.student().GuardianPhone }, func(u *User, v string) { u.student().GuardianPhone = v }},
	},
	RoleTeacher: {
		{"employeeId", func(u *User) string { return u.teacher().EmployeeID }, func(u *User, v string) { u.teacher().EmployeeID = v }},
		{"qualification", func(u *User) string { return u.teacher().Qualification }, func(u *User, v string) { u.teacher().Qualification = v }},
		{"specialization", func(u *User) string { return u.teacher().Specialization }, func(u *User, v string) { u.teacher().Specialization = v }},
		{"experience", func(u *User) string { return u.teacher().Experience }, func(u *User, v string) { u.teacher().Experience = v }},
		{"joiningDate", func(u *User) string { return FormatDate(u.teacher().JoiningDate) }, func(u *User, v string) { u.teacher().JoiningDate = parseOptionalDate(v) }},
		{"subjects", func(u *User) string { return joinList(u.teacher().Subjects) }, func(u *User, v string) { u.teacher().Subjects = splitList(v) }},
	},
	RoleParent: {
		{"occupation", func(u *User) string { return u.parent().Occupation }, func(u *User, v string) { u.parent().Occupation = v }},
		{"relation", func(u *User) string { return u.parent().Relation }, func(u *User, v string) { u.parent().Relation = v }},
		{"childrenAdmissionNumbers", func(u *User) string { return joinList(u.parent().ChildrenAdmissionNumbers) }, func(u *User, v string) { u.parent().ChildrenAdmissionNumbers = splitList(v) }},
	},
	RoleStaff: {
		{"employeeId", func(u *User) string { return u.staff().EmployeeID }, func(u *User, v string) { u.staff().EmployeeID = v }},
		{"designation", func(u *User) string { return u.staff().Designation }, func(u *User, v string) { u.staff().Designation = v }},
		{"department", func(u *User) string { return u.staff().Department }, func(u *User, v string) { u.staff().Department = v }},
		{"joiningDate", func(u *User) string { return FormatDate(u.staff().JoiningDate) }, func(u *User, v string) { u.staff().JoiningDate = parseOptionalDate(v) }},
	},
}

// IsUserRole reports whether role has a role-specific block.
func IsUserRole(role string) bool {
	_, ok := roleFields[role]
	return ok
}

// TransformCSVToUserData converts parsed rows into API user records.
// Rows are read by lower-cased header; absent columns leave zero values.
func TransformCSVToUserData(rows []Row, role string) []User {
	fields := fieldsFor(role)
	users := make([]User, 0, len(rows))

	for _, row := range rows {
		u := User{Role: role}
		switch role {
		case RoleStudent:
			u.StudentData = &StudentData{}
		case RoleTeacher:
			u.TeacherData = &TeacherData{}
		case RoleParent:
			u.ParentData = &ParentData{}
		case RoleStaff:
			u.StaffData = &StaffData{}
		}

		for _, f := range fields {
			f.set(&u, row[strings.ToLower(f.header)])
		}
		users = append(users, u)
	}

	return users
}

// UserColumns returns the CSV columns the transformers read and write for
// role: the common profile columns followed by the role's own columns.
// An unknown role yields only the common columns.
func UserColumns(role string) []string {
	fields := fieldsFor(role)
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.header
	}
	return cols
}

// TransformUserDataToCSV flattens users into records keyed by the role
// template's headers, ready for GenerateCSV. Roles without a template fall
// back to UserColumns.
func TransformUserDataToCSV(users []User, role string) ([]Record, []string) {
	var headers []string
	if tpl, ok := Get(role); ok {
		headers = tpl.Headers
	} else {
		headers = UserColumns(role)
	}

	byHeader := make(map[string]userField)
	for _, f := range fieldsFor(role) {
		byHeader[strings.ToLower(f.header)] = f
	}

	data := make([]Record, 0, len(users))
	for i := range users {
		u := users[i]
		rec := make(Record, len(headers))
		for _, h := range headers {
			if f, ok := byHeader[strings.ToLower(h)]; ok {
				rec[h] = f.get(&u)
			} else {
				rec[h] = ""
			}
		}
		data = append(data, rec)
	}

	return data, headers
}

func fieldsFor(role string) []userField {
	fields := make([]userField, 0, len(commonFields)+len(roleFields[role]))
	fields = append(fields, commonFields...)
	return append(fields, roleFields[role]...)
}

// The accessors below allocate the role block on first use so getters
// and setters never see a nil block.

func (u *User) student() *StudentData {
	if u.StudentData == nil {
		u.StudentData = &StudentData{}
	}
	return u.StudentData
}

func (u *User) teacher() *TeacherData {
	if u.TeacherData == nil {
		u.TeacherData = &TeacherData{}
	}
	return u.TeacherData
}

func (u *User) parent() *ParentData {
	if u.ParentData == nil {
		u.ParentData = &ParentData{}
	}
	return u.ParentData
}

func (u *User) staff() *StaffData {
	if u.StaffData == nil {
		u.StaffData = &StaffData{}
	}
	return u.StaffData
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, listSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func joinList(items []string) string {
	return strings.Join(items, listSeparator)
}
