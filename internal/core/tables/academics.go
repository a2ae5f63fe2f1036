package tables

import "github.com/regression1607/meridian-frontend-sub000/internal/core"

func init() {
	core.Register(core.Template{
		Name:     "attendance",
		Headers:  []string{"rollNumber", "studentName", "email", "status", "date", "remarks"},
		Required: []string{"rollNumber", "status", "date"},
		Example: [][]string{
			{"15", "John Doe", "john.doe@example.com", "present", "2024-06-10", ""},
			{"16", "Emma Brown", "emma.brown@example.com", "absent", "2024-06-10", "Sick leave"},
		},
	})

	core.Register(core.Template{
		Name: "examResults",
		Headers: []string{
			"rollNumber", "studentName", "examName", "subject",
			"maxMarks", "obtainedMarks", "grade", "remarks",
		},
		Required: []string{"rollNumber", "examName", "subject", "obtainedMarks"},
		Example: [][]string{
			{"15", "John Doe", "Midterm", "Mathematics", "100", "87", "A", "Good work"},
		},
	})

	core.Register(core.Template{
		Name: "homework",
		Headers: []string{
			"class", "section", "subject", "title", "description",
			"assignedDate", "dueDate", "teacherEmployeeId",
		},
		Required: []string{"class", "subject", "title", "dueDate"},
		Example: [][]string{
			{"10", "A", "Mathematics", "Quadratic Equations", "Solve exercise 4.2, questions 1-10", "2024-06-10", "2024-06-14", "EMP1001"},
		},
	})

	core.Register(core.Template{
		Name: "events",
		Headers: []string{
			"title", "description", "eventType", "startDate",
			"endDate", "venue", "organizer", "audience",
		},
		Required: []string{"title", "eventType", "startDate"},
		Example: [][]string{
			{"Annual Sports Day", "Track and field events for all classes", "sports", "2024-12-15", "2024-12-15", "Main Ground", "Physical Education Dept", "all"},
		},
	})
}
