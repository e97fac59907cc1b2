package employee

import "testing"

func managerRef(id int64) *int64 {
	return &id
}

func TestNewDirectory_LookupAndOrder(t *testing.T) {
	t.Parallel()

	dir := NewDirectory([]*Employee{
		{ID: 125, FirstName: "Bob", LastName: "Ronstad", Salary: 47000, ManagerID: managerRef(123)},
		{ID: 123, FirstName: "Joe", LastName: "Doe", Salary: 60000},
		{ID: 124, FirstName: "Martin", LastName: "Chekov", Salary: 45000, ManagerID: managerRef(123)},
	})

	if dir.Len() != 3 {
		t.Fatalf("expected 3 employees, got %d", dir.Len())
	}

	joe, ok := dir.Get(123)
	if !ok {
		t.Fatalf("expected employee 123 to exist")
	}
	if !joe.IsRoot() {
		t.Fatalf("expected employee 123 to be the root")
	}
	if joe.FullName() != "Joe Doe" {
		t.Fatalf("unexpected full name %q", joe.FullName())
	}

	if _, ok := dir.Get(999); ok {
		t.Fatalf("expected unknown id lookup to fail")
	}

	all := dir.All()
	want := []int64{123, 124, 125}
	for i, e := range all {
		if e.ID != want[i] {
			t.Fatalf("expected ascending order %v, got id %d at %d", want, e.ID, i)
		}
	}
}

func TestDirectory_Subordinates(t *testing.T) {
	t.Parallel()

	dir := NewDirectory([]*Employee{
		{ID: 1, FirstName: "Root", LastName: "User", Salary: 100},
		{ID: 3, FirstName: "C", LastName: "C", Salary: 10, ManagerID: managerRef(1)},
		{ID: 2, FirstName: "B", LastName: "B", Salary: 10, ManagerID: managerRef(1)},
		{ID: 4, FirstName: "D", LastName: "D", Salary: 10, ManagerID: managerRef(2)},
	})

	subs := dir.Subordinates(1)
	if len(subs) != 2 || subs[0].ID != 2 || subs[1].ID != 3 {
		t.Fatalf("unexpected subordinates of 1: %+v", subs)
	}

	if subs := dir.Subordinates(4); len(subs) != 0 {
		t.Fatalf("expected no subordinates for leaf, got %+v", subs)
	}
}

func TestNewDirectory_CopiesRecords(t *testing.T) {
	t.Parallel()

	manager := int64(1)
	src := &Employee{ID: 2, FirstName: "A", LastName: "B", Salary: 10, ManagerID: &manager}
	dir := NewDirectory([]*Employee{src})

	src.Salary = 99
	manager = 42

	got, _ := dir.Get(2)
	if got.Salary != 10 {
		t.Fatalf("expected salary to be isolated from source, got %v", got.Salary)
	}
	if id, ok := got.Manager(); !ok || id != 1 {
		t.Fatalf("expected manager 1, got %d (%t)", id, ok)
	}
}

func TestNewDirectory_DuplicateIDLastWins(t *testing.T) {
	t.Parallel()

	dir := NewDirectory([]*Employee{
		{ID: 7, FirstName: "First", Salary: 1},
		nil,
		{ID: 7, FirstName: "Second", Salary: 2},
	})

	if dir.Len() != 1 {
		t.Fatalf("expected 1 employee, got %d", dir.Len())
	}
	got, _ := dir.Get(7)
	if got.FirstName != "Second" {
		t.Fatalf("expected later record to win, got %s", got.FirstName)
	}
}

func TestNewDirectory_Empty(t *testing.T) {
	t.Parallel()

	dir := NewDirectory(nil)
	if dir.Len() != 0 || len(dir.All()) != 0 {
		t.Fatalf("expected empty directory")
	}
}
