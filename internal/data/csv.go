package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"lng-diversion/internal/model"
)

// Reference data file names expected under the data directory.
const (
	RoutesFile       = "routes.csv"
	VesselsFile      = "vessels.csv"
	CarbonParamsFile = "carbon_params.csv"
	HistoryFile      = "history.csv"
)

// LoadRefData loads all static reference tables from a directory.
func LoadRefData(dir string) (model.RefData, error) {
	routes, err := LoadRoutes(filepath.Join(dir, RoutesFile))
	if err != nil {
		return model.RefData{}, err
	}
	vessels, err := LoadVessels(filepath.Join(dir, VesselsFile))
	if err != nil {
		return model.RefData{}, err
	}
	carbon, err := LoadCarbonParams(filepath.Join(dir, CarbonParamsFile))
	if err != nil {
		return model.RefData{}, err
	}
	return model.RefData{Routes: routes, Vessels: vessels, Carbon: carbon}, nil
}

// LoadRoutes reads the route table. Duplicate (load, discharge) pairs are a
// load error, not a last-one-wins merge.
func LoadRoutes(path string) ([]model.Route, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	iLoad, err := col(header, "load_port", path)
	if err != nil {
		return nil, err
	}
	iDischarge, err := col(header, "discharge_port", path)
	if err != nil {
		return nil, err
	}
	iDist, err := col(header, "distance_nm", path)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	routes := make([]model.Route, 0, len(rows))
	for n, row := range rows {
		dist, err := parseFloat(row[iDist], path, n)
		if err != nil {
			return nil, err
		}
		key := row[iLoad] + " -> " + row[iDischarge]
		if seen[key] {
			return nil, fmt.Errorf("%s: duplicate route %s", path, key)
		}
		seen[key] = true
		routes = append(routes, model.Route{
			LoadPort:      row[iLoad],
			DischargePort: row[iDischarge],
			DistanceNM:    dist,
		})
	}
	return routes, nil
}

// LoadVessels reads the vessel class table. Duplicate classes are a load
// error.
func LoadVessels(path string) ([]model.Vessel, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	cols := []string{
		"vessel_class",
		"cargo_capacity_m3",
		"laden_speed_kn",
		"ballast_speed_kn",
		"boil_off_pct_per_day",
		"fuel_consumption_tpd_laden",
		"fuel_consumption_tpd_ballast",
	}
	idx := make([]int, len(cols))
	for i, c := range cols {
		if idx[i], err = col(header, c, path); err != nil {
			return nil, err
		}
	}

	seen := map[string]bool{}
	vessels := make([]model.Vessel, 0, len(rows))
	for n, row := range rows {
		nums := make([]float64, len(cols))
		for i := 1; i < len(cols); i++ {
			if nums[i], err = parseFloat(row[idx[i]], path, n); err != nil {
				return nil, err
			}
		}
		class := row[idx[0]]
		if seen[class] {
			return nil, fmt.Errorf("%s: duplicate vessel class %s", path, class)
		}
		seen[class] = true
		vessels = append(vessels, model.Vessel{
			VesselClass:               class,
			CargoCapacityM3:           nums[1],
			LadenSpeedKn:              nums[2],
			BallastSpeedKn:            nums[3],
			BoilOffPctPerDay:          nums[4],
			FuelConsumptionTPDLaden:   nums[5],
			FuelConsumptionTPDBallast: nums[6],
		})
	}
	return vessels, nil
}

// LoadCarbonParams reads the param,value scalar table.
func LoadCarbonParams(path string) (model.CarbonParams, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	iParam, err := col(header, "param", path)
	if err != nil {
		return nil, err
	}
	iValue, err := col(header, "value", path)
	if err != nil {
		return nil, err
	}

	params := model.CarbonParams{}
	for n, row := range rows {
		v, err := parseFloat(row[iValue], path, n)
		if err != nil {
			return nil, err
		}
		params[row[iParam]] = v
	}
	return params, nil
}

// LoadHistory reads the merged historical market series and returns it in
// chronological order regardless of file order.
func LoadHistory(path string) ([]model.MarketObservation, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	cols := []string{
		"date",
		"ttf_usd_mmbtu",
		"jkm_usd_mmbtu",
		"freight_usd_day",
		"fuel_usd_per_t",
		"eua_usd_per_tco2",
	}
	idx := make([]int, len(cols))
	for i, c := range cols {
		if idx[i], err = col(header, c, path); err != nil {
			return nil, err
		}
	}

	obs := make([]model.MarketObservation, 0, len(rows))
	for n, row := range rows {
		date, err := time.Parse("2006-01-02", row[idx[0]])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad date %q: %w", path, n+2, row[idx[0]], err)
		}
		nums := make([]float64, len(cols))
		for i := 1; i < len(cols); i++ {
			if nums[i], err = parseFloat(row[idx[i]], path, n); err != nil {
				return nil, err
			}
		}
		obs = append(obs, model.MarketObservation{
			Date:              date,
			PriceAUSDMMBtu:    nums[1],
			PriceBUSDMMBtu:    nums[2],
			FreightRateUSDDay: nums[3],
			FuelPriceUSDT:     nums[4],
			EUAPriceUSDT:      nums[5],
		})
	}

	sort.Slice(obs, func(i, j int) bool { return obs[i].Date.Before(obs[j].Date) })
	return obs, nil
}

func readCSV(path string) (rows [][]string, header []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("%s: empty file", path)
	}
	return all[1:], all[0], nil
}

func col(header []string, name, path string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s: missing column %q", path, name)
}

func parseFloat(s, path string, row int) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s row %d: bad number %q: %w", path, row+2, s, err)
	}
	return v, nil
}
