package shop

type Status string

const (
	StatusMenunggu   Status = "menunggu"
	StatusDiproses   Status = "diproses"
	StatusDikirim    Status = "dikirim"
	StatusSelesai    Status = "selesai"
	StatusDibatalkan Status = "dibatalkan"
)

var validNext = map[Status]map[Status]bool{
	StatusMenunggu:   {StatusDiproses: true, StatusDibatalkan: true},
	StatusDiproses:   {StatusDikirim: true, StatusDibatalkan: true},
	StatusDikirim:    {StatusSelesai: true, StatusDibatalkan: true},
	StatusSelesai:    {},
	StatusDibatalkan: {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

func ValidStatus(s Status) bool {
	_, ok := validNext[s]
	return ok
}
