// Package geo provides centroid coordinates for California counties.
// Lookup only; no interpolation.
package geo

import "sort"

// Centroid is an approximate county center.
type Centroid struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

var countyCentroids = map[string]Centroid{
	"Alameda":         {37.6017, -121.7195},
	"Amador":          {38.4463, -120.6542},
	"Butte":           {39.6670, -121.6008},
	"Calaveras":       {38.1877, -120.5592},
	"Colusa":          {39.1776, -122.2375},
	"Contra Costa":    {37.9193, -121.9277},
	"El Dorado":       {38.7786, -120.5246},
	"Fresno":          {36.7585, -119.6482},
	"Glenn":           {39.5983, -122.3922},
	"Inyo":            {36.5115, -117.4109},
	"Kern":            {35.3429, -118.7295},
	"Lake":            {39.0997, -122.7536},
	"Lassen":          {40.6736, -120.5964},
	"Los Angeles":     {34.3083, -118.2280},
	"Madera":          {37.2181, -119.7631},
	"Mariposa":        {37.5831, -119.9665},
	"Mendocino":       {39.4337, -123.3913},
	"Monterey":        {36.2160, -121.2495},
	"Napa":            {38.5025, -122.2654},
	"Nevada":          {39.3013, -120.7689},
	"Orange":          {33.7175, -117.8311},
	"Placer":          {39.0634, -120.7176},
	"Plumas":          {40.0034, -120.8389},
	"Riverside":       {33.7437, -115.9939},
	"Sacramento":      {38.4500, -121.3400},
	"San Benito":      {36.6058, -121.0750},
	"San Bernardino":  {34.8414, -116.1781},
	"San Diego":       {33.0284, -116.7679},
	"San Joaquin":     {37.9349, -121.2716},
	"San Luis Obispo": {35.3872, -120.4522},
	"San Mateo":       {37.4337, -122.4014},
	"Santa Barbara":   {34.5374, -120.0388},
	"Santa Clara":     {37.2319, -121.6951},
	"Santa Cruz":      {37.0603, -122.0067},
	"Shasta":          {40.7637, -122.0403},
	"Siskiyou":        {41.5926, -122.5402},
	"Solano":          {38.2668, -121.9400},
	"Sonoma":          {38.5254, -122.9276},
	"Stanislaus":      {37.5593, -120.9971},
	"Tehama":          {40.1257, -122.2343},
	"Trinity":         {40.6510, -123.1117},
	"Tulare":          {36.2278, -118.7815},
	"Tuolumne":        {38.0272, -119.9545},
	"Ventura":         {34.4583, -119.0322},
	"Yolo":            {38.6864, -121.9018},
	"Yuba":            {39.2678, -121.3500},
}

// CountyCentroid returns the centroid of the named county.
func CountyCentroid(county string) (Centroid, bool) {
	c, ok := countyCentroids[county]
	return c, ok
}

// Counties returns all known county names in alphabetical order.
func Counties() []string {
	names := make([]string, 0, len(countyCentroids))
	for name := range countyCentroids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
