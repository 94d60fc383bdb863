package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lng-diversion/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRoutes(t *testing.T) {
	path := writeFile(t, t.TempDir(), RoutesFile,
		"load_port,discharge_port,distance_nm\nUS_Gulf,Rotterdam,5000\nUS_Gulf,Tokyo,9500\n")

	routes, err := LoadRoutes(path)
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, model.Route{LoadPort: "US_Gulf", DischargePort: "Rotterdam", DistanceNM: 5000}, routes[0])
}

func TestLoadRoutesDuplicatePair(t *testing.T) {
	path := writeFile(t, t.TempDir(), RoutesFile,
		"load_port,discharge_port,distance_nm\nUS_Gulf,Rotterdam,5000\nUS_Gulf,Rotterdam,5100\n")

	_, err := LoadRoutes(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate route")
}

func TestLoadRoutesColumnOrderIndependent(t *testing.T) {
	path := writeFile(t, t.TempDir(), RoutesFile,
		"distance_nm,load_port,discharge_port\n5000,US_Gulf,Rotterdam\n")

	routes, err := LoadRoutes(path)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, routes[0].DistanceNM)
	assert.Equal(t, "Rotterdam", routes[0].DischargePort)
}

func TestLoadRoutesMissingColumn(t *testing.T) {
	path := writeFile(t, t.TempDir(), RoutesFile,
		"load_port,discharge_port\nUS_Gulf,Rotterdam\n")

	_, err := LoadRoutes(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "distance_nm")
}

func TestLoadVessels(t *testing.T) {
	path := writeFile(t, t.TempDir(), VesselsFile,
		"vessel_class,cargo_capacity_m3,laden_speed_kn,ballast_speed_kn,boil_off_pct_per_day,fuel_consumption_tpd_laden,fuel_consumption_tpd_ballast\n"+
			"TFDE,174000,19.5,19.0,0.10,130,115\n")

	vessels, err := LoadVessels(path)
	require.NoError(t, err)
	require.Len(t, vessels, 1)
	assert.Equal(t, "TFDE", vessels[0].VesselClass)
	assert.Equal(t, 0.10, vessels[0].BoilOffPctPerDay)
	assert.Equal(t, 115.0, vessels[0].FuelConsumptionTPDBallast)
}

func TestLoadVesselsDuplicateClass(t *testing.T) {
	path := writeFile(t, t.TempDir(), VesselsFile,
		"vessel_class,cargo_capacity_m3,laden_speed_kn,ballast_speed_kn,boil_off_pct_per_day,fuel_consumption_tpd_laden,fuel_consumption_tpd_ballast\n"+
			"TFDE,174000,19.5,19.0,0.10,130,115\nTFDE,170000,19.0,18.5,0.11,128,112\n")

	_, err := LoadVessels(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate vessel class")
}

func TestLoadCarbonParams(t *testing.T) {
	path := writeFile(t, t.TempDir(), CarbonParamsFile,
		"param,value\nEUA_price_USD_per_t,74.40\nCO2_factor_VLSFO_tCO2_per_t_fuel,3.114\n")

	params, err := LoadCarbonParams(path)
	require.NoError(t, err)
	assert.Equal(t, 74.40, params[model.ParamEUAPriceUSDPerT])
	assert.Equal(t, 3.114, params[model.ParamCO2FactorVLSFO])
}

func TestLoadHistorySortsChronologically(t *testing.T) {
	path := writeFile(t, t.TempDir(), HistoryFile,
		"date,ttf_usd_mmbtu,jkm_usd_mmbtu,freight_usd_day,fuel_usd_per_t,eua_usd_per_tco2\n"+
			"2025-06-04,35.69,38.44,85000,583,74.40\n"+
			"2025-06-02,35.10,37.40,82000,575,72.10\n"+
			"2025-06-03,35.45,37.95,83500,577,72.60\n")

	obs, err := LoadHistory(path)
	require.NoError(t, err)
	require.Len(t, obs, 3)
	assert.Equal(t, "2025-06-02", obs[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2025-06-04", obs[2].Date.Format("2006-01-02"))
	assert.Equal(t, 38.44, obs[2].PriceBUSDMMBtu)
}

func TestLoadHistoryBadDate(t *testing.T) {
	path := writeFile(t, t.TempDir(), HistoryFile,
		"date,ttf_usd_mmbtu,jkm_usd_mmbtu,freight_usd_day,fuel_usd_per_t,eua_usd_per_tco2\n"+
			"junk,35.69,38.44,85000,583,74.40\n")

	_, err := LoadHistory(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad date")
}

func TestLoadHistoryBadNumber(t *testing.T) {
	path := writeFile(t, t.TempDir(), HistoryFile,
		"date,ttf_usd_mmbtu,jkm_usd_mmbtu,freight_usd_day,fuel_usd_per_t,eua_usd_per_tco2\n"+
			"2025-06-04,not-a-price,38.44,85000,583,74.40\n")

	_, err := LoadHistory(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad number")
}

func TestLoadRefData(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, RoutesFile, "load_port,discharge_port,distance_nm\nUS_Gulf,Rotterdam,5000\n")
	writeFile(t, dir, VesselsFile,
		"vessel_class,cargo_capacity_m3,laden_speed_kn,ballast_speed_kn,boil_off_pct_per_day,fuel_consumption_tpd_laden,fuel_consumption_tpd_ballast\n"+
			"TFDE,174000,19.5,19.0,0.10,130,115\n")
	writeFile(t, dir, CarbonParamsFile, "param,value\nEUA_price_USD_per_t,74.40\n")

	ref, err := LoadRefData(dir)
	require.NoError(t, err)
	assert.Len(t, ref.Routes, 1)
	assert.Len(t, ref.Vessels, 1)
	assert.Equal(t, 74.40, ref.Carbon[model.ParamEUAPriceUSDPerT])
}

func TestLoadRefDataMissingFile(t *testing.T) {
	_, err := LoadRefData(t.TempDir())
	require.Error(t, err)
}
