package member

// MonthsPerYear is the number of monthly hour buckets on a team member.
const MonthsPerYear = 12

// TeamMember is one row of the team table. Name is the key other tables
// refer to; MonthlyHours holds the available hours per calendar month
// (index 0 = January) of the planning year.
type TeamMember struct {
	Name         string
	Role         string
	Grade        string
	MonthlyHours [MonthsPerYear]int
}

// Roles and Grades are the vocabularies offered to table editors. The
// store does not enforce them.
var Roles = []string{
	"Director",
	"Team Leader",
	"Senior Engineer",
	"Engineer",
	"Junior Engineer",
	"Tech & Delivery",
	"Developer",
	"Consultant",
	"Other",
}

var Grades = []string{
	"Ph.D.",
	"Msc.",
	"Ing.",
	"Estudiante",
	"Otro",
}
