package directory

import "tripcarbon/internal/domain"

// knownRoutes is the static intercity distance table. Distances are
// road distances in km. Lookup is direction-agnostic, so each pair is
// stored once.
var knownRoutes = []domain.Route{
	{Origin: "São Paulo, SP", Destination: "Rio de Janeiro, RJ", DistanceKm: 430},
	{Origin: "São Paulo, SP", Destination: "Belo Horizonte, MG", DistanceKm: 586},
	{Origin: "São Paulo, SP", Destination: "Curitiba, PR", DistanceKm: 408},
	{Origin: "São Paulo, SP", Destination: "Campinas, SP", DistanceKm: 99},
	{Origin: "São Paulo, SP", Destination: "Santos, SP", DistanceKm: 72},
	{Origin: "São Paulo, SP", Destination: "Brasília, DF", DistanceKm: 1015},
	{Origin: "Rio de Janeiro, RJ", Destination: "Belo Horizonte, MG", DistanceKm: 434},
	{Origin: "Rio de Janeiro, RJ", Destination: "Brasília, DF", DistanceKm: 1148},
	{Origin: "Curitiba, PR", Destination: "Florianópolis, SC", DistanceKm: 300},
	{Origin: "Curitiba, PR", Destination: "Porto Alegre, RS", DistanceKm: 711},
	{Origin: "Porto Alegre, RS", Destination: "Florianópolis, SC", DistanceKm: 476},
	{Origin: "Belo Horizonte, MG", Destination: "Brasília, DF", DistanceKm: 716},
	{Origin: "Salvador, BA", Destination: "Recife, PE", DistanceKm: 839},
	{Origin: "Salvador, BA", Destination: "Belo Horizonte, MG", DistanceKm: 1372},
	{Origin: "Fortaleza, CE", Destination: "Recife, PE", DistanceKm: 800},
}
