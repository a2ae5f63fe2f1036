package tables

import "github.com/regression1607/meridian-frontend-sub000/internal/core"

func init() {
	core.Register(core.Template{
		Name: "fees",
		Headers: []string{
			"admissionNumber", "studentName", "feeType", "amount", "dueDate",
			"paidAmount", "paymentDate", "paymentMethod", "status",
		},
		Required: []string{"admissionNumber", "feeType", "amount", "dueDate"},
		Example: [][]string{
			{"ADM2024001", "John Doe", "tuition", "15000", "2024-07-10", "15000", "2024-07-05", "online", "paid"},
		},
	})

	core.Register(core.Template{
		Name: "payroll",
		Headers: []string{
			"employeeId", "employeeName", "month", "basicSalary", "allowances",
			"deductions", "netSalary", "paymentDate", "status",
		},
		Required: []string{"employeeId", "month", "basicSalary", "netSalary"},
		Example: [][]string{
			{"EMP1001", "Jane Smith", "2024-06", "50000", "5000", "2000", "53000", "2024-06-30", "paid"},
		},
	})

	core.Register(core.Template{
		Name: "admissions",
		Headers: []string{
			"firstName", "lastName", "email", "phone", "gender", "dateOfBirth",
			"applyingForClass", "previousSchool", "guardianName", "guardianPhone",
			"applicationDate", "status",
		},
		Required: []string{"firstName", "lastName", "dateOfBirth", "applyingForClass", "guardianName", "guardianPhone"},
		Example: [][]string{
			{"Emma", "Brown", "emma.brown@example.com", "9876511111", "female", "2012-03-22", "6", "Green Valley School", "Lisa Brown", "9876511112", "2024-03-01", "pending"},
		},
	})

	core.Register(core.Template{
		Name:     "books",
		Headers:  []string{"isbn", "title", "author", "publisher", "category", "edition", "quantity", "location"},
		Required: []string{"isbn", "title", "author", "quantity"},
		Example: [][]string{
			{"978-0131103627", "The C Programming Language", "Kernighan, Ritchie", "Prentice Hall", "Computer Science", "2", "5", "Shelf B3"},
		},
	})
}
