package employee

// Employee は社員レコードです。ManagerID が nil の社員は組織のルート (CEO) を表します。
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Salary    float64
	ManagerID *int64
}

// Manager は上長の ID を返します。ルートの場合は false を返します。
func (e Employee) Manager() (int64, bool) {
	if e.ManagerID == nil {
		return 0, false
	}
	return *e.ManagerID, true
}

// IsRoot は上長を持たない社員かどうかを返します。
func (e Employee) IsRoot() bool {
	return e.ManagerID == nil
}

// FullName は "名 姓" の形式で氏名を返します。
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func cloneEmployee(e *Employee) Employee {
	clone := *e
	if e.ManagerID != nil {
		id := *e.ManagerID
		clone.ManagerID = &id
	}
	return clone
}
