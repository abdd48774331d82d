package domain

type AirplaneType struct {
	ID        int64
	Name      string
	Airplanes []Airplane
}

func (t AirplaneType) String() string {
	return t.Name
}

type Airplane struct {
	ID             int64
	Name           string
	Rows           int
	SeatsInRow     int
	AirplaneTypeID int64
}

func (a Airplane) String() string {
	return a.Name
}

// Capacity is derived and never stored.
func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}

type Crew struct {
	ID        int64
	FirstName string
	LastName  string
}

func (c Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}

func (c Crew) String() string {
	return c.FullName()
}
