package models

import "time"

// AttendanceSession is one punch-in / punch-out pair for an employee.
// A session with CheckOutAt == nil is "open". The schema deliberately
// allows several open sessions per employee at once; there is no
// uniqueness constraint on open sessions.
type AttendanceSession struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	EmployeeID uint       `gorm:"index;not null" json:"employeeId"`
	CheckInAt  time.Time  `gorm:"index;not null" json:"checkInAt"`
	CheckOutAt *time.Time `json:"checkOutAt"`
	Note       string     `gorm:"type:text" json:"note,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"-"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// Open reports whether the session has not been punched out yet.
func (s *AttendanceSession) Open() bool {
	return s.CheckOutAt == nil
}

// Hours returns the wall-clock duration in decimal hours, full precision.
// A closed session with check-out before check-in yields a negative value;
// that is not prevented at write time.
func (s *AttendanceSession) Hours() float64 {
	if s.CheckOutAt == nil {
		return 0
	}
	return s.CheckOutAt.Sub(s.CheckInAt).Hours()
}
