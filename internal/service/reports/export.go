package reports

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/pkg/ptr"
)

// sheetTitles названия листов выгрузки (не длиннее 31 символа)
var sheetTitles = map[Name]string{
	ReportCalendar:       "Calendar",
	ReportHistory:        "Booking History",
	ReportDailyStatus:    "Daily Status",
	ReportCapacity:       "Capacity Usage",
	ReportDeptMonthly:    "Department Monthly",
	ReportEmployeeYearly: "Employee Yearly",
	ReportHolidays:       "Holidays",
}

// FileName имя файла выгрузки отчёта
func FileName(name Name, month string) string {
	if month != "" {
		return fmt.Sprintf("%s-%s.xlsx", name, month)
	}
	return fmt.Sprintf("%s.xlsx", name)
}

// Export записывает текущие строки отчёта в xlsx
func (s *Service) Export(ctx context.Context, name Name, w io.Writer) error {
	snap, err := s.Get(ctx, name)
	if err != nil {
		return err
	}

	header, values := table(snap.Rows)

	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetTitles[name]
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("%w: rename sheet: %v", ErrExport, err)
	}

	if err := writeRow(f, sheet, 1, header); err != nil {
		return fmt.Errorf("%w: header: %v", ErrExport, err)
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil && len(header) > 0 {
		endCell, _ := excelize.CoordinatesToCellName(len(header), 1)
		_ = f.SetCellStyle(sheet, "A1", endCell, style)
	}

	for i, row := range values {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrExport, i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%w: write: %v", ErrExport, err)
	}

	s.logger.Info("Export: report=%s exported %d rows", name, len(values))
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// table раскладывает строки отчёта в заголовок и значения ячеек
func table(rows interface{}) ([]interface{}, [][]interface{}) {
	switch rows := rows.(type) {
	case []domain.BookingHistoryRow:
		header := []interface{}{"Date", "Employee Code", "Employee", "Department", "Office", "Seat", "Purpose", "Status"}
		values := make([][]interface{}, 0, len(rows))
		for _, r := range rows {
			values = append(values, []interface{}{
				r.BookingDate.String(), r.EmployeeCode, r.EmployeeName, r.DepartmentName, r.OfficeName,
				ptr.Deref(r.SeatCode), ptr.Deref(r.PurposeName), string(r.Status),
			})
		}
		return header, values
	case []domain.DailyStatusRow:
		header := []interface{}{"Date", "Purpose", "Status", "Total"}
		values := make([][]interface{}, 0, len(rows))
		for _, r := range rows {
			values = append(values, []interface{}{r.BookingDate.String(), ptr.Deref(r.PurposeName), string(r.Status), r.Total})
		}
		return header, values
	case []domain.CapacityUsageRow:
		header := []interface{}{"Date", "Department", "Office", "Active Bookings", "Seat Capacity", "Remaining"}
		values := make([][]interface{}, 0, len(rows))
		for _, r := range rows {
			values = append(values, []interface{}{
				r.BookingDate.String(), r.DepartmentName, r.OfficeName, r.ActiveBookings,
				optionalInt(r.SeatCapacity), optionalInt(r.Remaining()),
			})
		}
		return header, values
	case []domain.DepartmentMonthlyRow:
		header := []interface{}{"Month", "Department", "Office", "Total Bookings"}
		values := make([][]interface{}, 0, len(rows))
		for _, r := range rows {
			values = append(values, []interface{}{r.MonthStart.MonthKey(), r.DepartmentName, r.OfficeName, r.TotalBookings})
		}
		return header, values
	case []domain.EmployeeYearlyRow:
		header := []interface{}{"Year", "Employee Code", "First Name", "Last Name", "Booked Days"}
		values := make([][]interface{}, 0, len(rows))
		for _, r := range rows {
			values = append(values, []interface{}{r.Year, r.EmployeeCode, r.FirstName, r.LastName, r.TotalBookedDays})
		}
		return header, values
	case []domain.HolidayOverviewRow:
		header := []interface{}{"Date", "Holiday", "Office", "Description"}
		values := make([][]interface{}, 0, len(rows))
		for _, r := range rows {
			values = append(values, []interface{}{r.HolidayDate.String(), r.HolidayName, r.OfficeName, ptr.Deref(r.Description)})
		}
		return header, values
	}
	return []interface{}{}, nil
}

func optionalInt(v *int) interface{} {
	if v == nil {
		return "-"
	}
	return *v
}
