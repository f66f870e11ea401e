package catalog

import "github.com/shopspring/decimal"

// ===============================
// Tipos de Serviço
// ===============================

type ServiceType string

const (
	ServiceHaircut   ServiceType = "haircut"
	ServiceManicure  ServiceType = "manicure"
	ServicePedicure  ServiceType = "pedicure"
	ServiceFacial    ServiceType = "facial"
	ServiceMassage   ServiceType = "massage"
	ServiceHairColor ServiceType = "hair_color"
	ServiceHairStyle ServiceType = "hair_style"
	ServiceMakeup    ServiceType = "makeup"
	ServiceWaxing    ServiceType = "waxing"
	ServiceOther     ServiceType = "other"
)

var allServices = []ServiceType{
	ServiceHaircut,
	ServiceManicure,
	ServicePedicure,
	ServiceFacial,
	ServiceMassage,
	ServiceHairColor,
	ServiceHairStyle,
	ServiceMakeup,
	ServiceWaxing,
	ServiceOther,
}

func All() []ServiceType {
	out := make([]ServiceType, len(allServices))
	copy(out, allServices)
	return out
}

func IsValid(s ServiceType) bool {
	for _, st := range allServices {
		if st == s {
			return true
		}
	}
	return false
}

// ===============================
// Entrada do catálogo
// ===============================

// Entry concentra as tabelas por tipo de serviço que antes ficavam
// espalhadas em dicionários duplicados: duração padrão, custo base e
// pontos de fidelidade ganhos por atendimento concluído.
type Entry struct {
	DefaultDurationMin int
	BaseCost           decimal.Decimal
	LoyaltyPoints      int
}

// Catalog é a tabela fechada de serviços. Construída a partir da
// configuração; somente leitura depois disso.
type Catalog struct {
	entries map[ServiceType]Entry
}

func New(entries map[ServiceType]Entry) *Catalog {
	m := make(map[ServiceType]Entry, len(entries))
	for st, e := range entries {
		m[st] = e
	}
	return &Catalog{entries: m}
}

// Default monta o catálogo com os valores padrão do salão.
func Default() *Catalog {
	cost := func(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

	return New(map[ServiceType]Entry{
		ServiceHaircut:   {DefaultDurationMin: 30, BaseCost: cost(30.0), LoyaltyPoints: 10},
		ServiceManicure:  {DefaultDurationMin: 45, BaseCost: cost(25.0), LoyaltyPoints: 8},
		ServicePedicure:  {DefaultDurationMin: 60, BaseCost: cost(35.0), LoyaltyPoints: 12},
		ServiceFacial:    {DefaultDurationMin: 60, BaseCost: cost(65.0), LoyaltyPoints: 15},
		ServiceMassage:   {DefaultDurationMin: 60, BaseCost: cost(75.0), LoyaltyPoints: 20},
		ServiceHairColor: {DefaultDurationMin: 120, BaseCost: cost(100.0), LoyaltyPoints: 25},
		ServiceHairStyle: {DefaultDurationMin: 45, BaseCost: cost(45.0), LoyaltyPoints: 12},
		ServiceMakeup:    {DefaultDurationMin: 60, BaseCost: cost(55.0), LoyaltyPoints: 15},
		ServiceWaxing:    {DefaultDurationMin: 30, BaseCost: cost(30.0), LoyaltyPoints: 10},
		ServiceOther:     {DefaultDurationMin: 30, BaseCost: cost(40.0), LoyaltyPoints: 10},
	})
}

var fallback = Entry{
	DefaultDurationMin: 30,
	BaseCost:           decimal.NewFromInt(40),
	LoyaltyPoints:      10,
}

func (c *Catalog) Entry(st ServiceType) Entry {
	if e, ok := c.entries[st]; ok {
		return e
	}
	return fallback
}

func (c *Catalog) DefaultDurationMin(st ServiceType) int {
	return c.Entry(st).DefaultDurationMin
}

func (c *Catalog) BaseCost(st ServiceType) decimal.Decimal {
	return c.Entry(st).BaseCost
}

func (c *Catalog) LoyaltyPoints(st ServiceType) int {
	return c.Entry(st).LoyaltyPoints
}

// ServiceCost calcula o custo do atendimento. Duração diferente do
// padrão ajusta o custo na mesma proporção.
func (c *Catalog) ServiceCost(st ServiceType, durationMin int) decimal.Decimal {
	e := c.Entry(st)
	if durationMin == e.DefaultDurationMin || e.DefaultDurationMin == 0 {
		return e.BaseCost
	}

	ratio := decimal.NewFromInt(int64(durationMin)).
		Div(decimal.NewFromInt(int64(e.DefaultDurationMin)))

	return e.BaseCost.Mul(ratio).Round(2)
}
