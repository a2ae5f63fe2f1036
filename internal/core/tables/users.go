package tables

import "github.com/regression1607/meridian-frontend-sub000/internal/core"

// Account templates. Their column order matches core.UserColumns so an
// exported user file can be imported again unchanged.

func init() {
	registerStudent()
	registerTeacher()
	registerParent()
	registerStaff()
}

func registerStudent() {
	core.Register(core.Template{
		Name: core.RoleStudent,
		Headers: []string{
			"firstName", "lastName", "email", "phone", "gender", "dateOfBirth",
			"street", "city", "state", "zipCode", "country",
			"admissionNumber", "rollNumber", "class", "section", "admissionDate",
			"bloodGroup", "guardianName", "guardianPhone",
		},
		Required: []string{"firstName", "lastName", "email", "admissionNumber", "class"},
		Example: [][]string{{
			"John", "Doe", "john.doe@example.com", "9876543210", "male", "2010-05-15",
			"12 Park Street", "Springfield", "IL", "62701", "USA",
			"ADM2024001", "15", "10", "A", "2024-04-01",
			"O+", "Robert Doe", "9876543211",
		}},
	})
}

func registerTeacher() {
	core.Register(core.Template{
		Name: core.RoleTeacher,
		Headers: []string{
			"firstName", "lastName", "email", "phone", "gender", "dateOfBirth",
			"street", "city", "state", "zipCode", "country",
			"employeeId", "qualification", "specialization", "experience",
			"joiningDate", "subjects",
		},
		Required: []string{"firstName", "lastName", "email", "employeeId"},
		Example: [][]string{{
			"Jane", "Smith", "jane.smith@example.com", "9876500001", "female", "1985-08-20",
			"45 Oak Avenue", "Springfield", "IL", "62702", "USA",
			"EMP1001", "M.Sc Mathematics", "Algebra", "10",
			"2015-06-01", "Mathematics;Physics",
		}},
	})
}

func registerParent() {
	core.Register(core.Template{
		Name: core.RoleParent,
		Headers: []string{
			"firstName", "lastName", "email", "phone", "gender", "dateOfBirth",
			"street", "city", "state", "zipCode", "country",
			"occupation", "relation", "childrenAdmissionNumbers",
		},
		Required: []string{"firstName", "lastName", "email"},
		Example: [][]string{{
			"Robert", "Doe", "robert.doe@example.com", "9876543211", "male", "1980-02-11",
			"12 Park Street", "Springfield", "IL", "62701", "USA",
			"Engineer", "father", "ADM2024001;ADM2024002",
		}},
	})
}

func registerStaff() {
	core.Register(core.Template{
		Name: core.RoleStaff,
		Headers: []string{
			"firstName", "lastName", "email", "phone", "gender", "dateOfBirth",
			"street", "city", "state", "zipCode", "country",
			"employeeId", "designation", "department", "joiningDate",
		},
		Required: []string{"firstName", "lastName", "email", "employeeId", "designation"},
		Example: [][]string{{
			"Mary", "Johnson", "mary.johnson@example.com", "9876500002", "female", "1990-11-03",
			"78 Pine Road", "Springfield", "IL", "62703", "USA",
			"STF2001", "Accountant", "Finance", "2019-07-15",
		}},
	})
}
