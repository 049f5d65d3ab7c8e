package models

const (
	PostedDateLayout  = "2006-01-02"
	ScrapedDateLayout = "2006-01-02 15:04:05"

	// NoSalary is the sentinel stored in the salary column when a listing
	// has no salary.
	NoSalary = "N/A"
)

// Columns is the exact column order of the handoff file.
var Columns = []string{
	"title",
	"company",
	"location",
	"salary",
	"skills",
	"posted_date",
	"scraped_date",
}

type JobRecord struct {
	Title       string
	Company     string
	Location    string
	Salary      string
	Skills      string
	PostedDate  string
	ScrapedDate string
}

// Row returns the record's fields in Columns order.
func (r JobRecord) Row() []string {
	return []string{
		r.Title,
		r.Company,
		r.Location,
		r.Salary,
		r.Skills,
		r.PostedDate,
		r.ScrapedDate,
	}
}

// Table is the analyzer's in-memory copy of the handoff file, in file order.
type Table []JobRecord
