package app

import "github.com/nesymno/property-api/types"

// Mock data stands in for a real listing source. Slices are rebuilt on every
// call so no request can observe another's copy.

func mockProperties() []types.Property {
	return []types.Property{
		{
			ID:           1,
			Title:        "Casa Moderna",
			Description:  "Linda casa com 3 quartos",
			Price:        450000.0,
			Location:     "São Paulo, SP",
			PropertyType: "Casa",
			Status:       "Disponível",
		},
		{
			ID:           2,
			Title:        "Apartamento Centro",
			Description:  "Apartamento no centro da cidade",
			Price:        320000.0,
			Location:     "Rio de Janeiro, RJ",
			PropertyType: "Apartamento",
			Status:       "Vendido",
		},
	}
}

func mockUsers() []types.User {
	return []types.User{
		{ID: 1, Name: "João Silva", Email: "joao@email.com", Role: "Admin"},
		{ID: 2, Name: "Maria Santos", Email: "maria@email.com", Role: "User"},
	}
}
