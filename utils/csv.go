package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// MemberCSVHeader is the literal column layout of the member bulk-upload
// template. Parsing is a naive split on newlines and commas: embedded
// commas, quoting and escapes are not supported, matching the template the
// hotels download. This is a documented limitation.
const MemberCSVHeader = "firstname,lastname,email,phone,status,membershipnumber,joindate,paiddate"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CSVMemberRow is one accepted row from a member bulk upload.
type CSVMemberRow struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Status           string
	MembershipNumber string
	JoinDate         string
	PaidDate         string
}

// ParseMemberCSV parses the bulk-upload body. The first line must be the
// template header. Rejected rows are collected as error strings indexed by
// their 1-based data-row number and excluded from the result.
func ParseMemberCSV(content string) ([]CSVMemberRow, []string) {
	var rows []CSVMemberRow
	var errs []string

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(strings.ToLower(lines[0])) != MemberCSVHeader {
		return nil, []string{"invalid header: expected " + MemberCSVHeader}
	}

	headerCols := len(strings.Split(MemberCSVHeader, ","))
	rowNum := 0
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rowNum++

		cols := strings.Split(line, ",")
		if len(cols) != headerCols {
			errs = append(errs, fmt.Sprintf("row %d: expected %d columns, got %d", rowNum, headerCols, len(cols)))
			continue
		}
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}

		if cols[0] == "" {
			errs = append(errs, fmt.Sprintf("row %d: firstname is required", rowNum))
			continue
		}
		if cols[1] == "" {
			errs = append(errs, fmt.Sprintf("row %d: lastname is required", rowNum))
			continue
		}
		if cols[2] == "" {
			errs = append(errs, fmt.Sprintf("row %d: email is required", rowNum))
			continue
		}
		if !emailRe.MatchString(cols[2]) {
			errs = append(errs, fmt.Sprintf("row %d: invalid email %q", rowNum, cols[2]))
			continue
		}

		status := strings.ToUpper(cols[4])
		if status == "" {
			status = "PENDING"
		}

		rows = append(rows, CSVMemberRow{
			FirstName:        cols[0],
			LastName:         cols[1],
			Email:            cols[2],
			Phone:            cols[3],
			Status:           status,
			MembershipNumber: cols[5],
			JoinDate:         cols[6],
			PaidDate:         cols[7],
		})
	}

	return rows, errs
}

// TimeSeriesCSVRow is one exported dashboard data point.
type TimeSeriesCSVRow struct {
	Date          string
	TotalReviews  int64
	AverageRating float64
}

// BuildTimeSeriesCSV renders the dashboard export. Same no-escaping
// convention as the import side; dates and numbers never contain commas.
func BuildTimeSeriesCSV(rows []TimeSeriesCSVRow) string {
	var b strings.Builder
	b.WriteString("Date,Total Reviews,Average Rating\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s,%d,%.2f\n", r.Date, r.TotalReviews, r.AverageRating))
	}
	return b.String()
}
