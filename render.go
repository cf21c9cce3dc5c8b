package routemapper

import (
	"html/template"
	"io"
)

// mapPoint is a marker on a rendered map.
type mapPoint struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// DrivingMap is the data for RenderDriving: a road route with its full
// geometry, as opposed to the straight legs of a Path.
type DrivingMap struct {
	Start, End Location

	// Geometry is the list of [lat, lng] pairs along the road.
	Geometry [][2]float64

	// Towns are settlements passed along the way.
	Towns []Location

	DistanceKm    float64
	DurationHours float64
	Cost          float64
}

// RenderMap writes a Leaflet HTML page with a marker for every stop of p
// and a line for every leg. It returns ErrNoPath if p was not found.
func RenderMap(w io.Writer, p *Path) error {
	if !p.Found() {
		return ErrNoPath
	}

	data := struct {
		Title  string
		Center mapPoint
		Stops  []mapPoint
	}{
		Title: p.String(),
	}
	for _, s := range p.Stops {
		data.Stops = append(data.Stops, mapPoint{Name: s.Name, Lat: s.Lat, Lng: s.Lng})
	}
	data.Center = data.Stops[0]

	return pathTemplate.Execute(w, data)
}

// RenderDriving writes a Leaflet HTML page showing a driving route.
func RenderDriving(w io.Writer, m DrivingMap) error {
	if len(m.Geometry) == 0 {
		return ErrNoPath
	}

	towns := make([]mapPoint, 0, len(m.Towns))
	for _, t := range m.Towns {
		towns = append(towns, mapPoint{Name: t.Name, Lat: t.Lat, Lng: t.Lng})
	}

	data := struct {
		Title    string
		Start    mapPoint
		End      mapPoint
		Mid      mapPoint
		Geometry [][2]float64
		Towns    []mapPoint
		Info     map[string]float64
	}{
		Title:    m.Start.Name + " -> " + m.End.Name,
		Start:    mapPoint{Name: m.Start.Name, Lat: m.Start.Lat, Lng: m.Start.Lng},
		End:      mapPoint{Name: m.End.Name, Lat: m.End.Lat, Lng: m.End.Lng},
		Mid:      mapPoint{Lat: (m.Start.Lat + m.End.Lat) / 2, Lng: (m.Start.Lng + m.End.Lng) / 2},
		Geometry: m.Geometry,
		Towns:    towns,
		Info: map[string]float64{
			"distance": m.DistanceKm,
			"duration": m.DurationHours,
			"cost":     m.Cost,
		},
	}

	return drivingTemplate.Execute(w, data)
}

// Values inside <script> are JSON encoded by html/template, so names end up
// as string literals. Popups are built from text nodes so a name is never
// parsed as HTML.
const mapHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8" />
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"/>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>#map { height: 100vh; }</style>
</head>
<body>
<div id="map"></div>
<script>
function text(s, bold) {
    var el = document.createElement(bold ? 'b' : 'span');
    el.textContent = s;
    return el;
}
`

const mapTiles = `L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
    attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
`

const mapFoot = `</script>
</body>
</html>
`

var pathTemplate = template.Must(template.New("path").Parse(mapHead + `var map = L.map('map').setView([{{.Center.Lat}}, {{.Center.Lng}}], 6);
` + mapTiles + `var stops = {{.Stops}};
stops.forEach(function (s) {
    L.marker([s.lat, s.lng]).addTo(map).bindPopup(text(s.name));
});
for (var i = 0; i + 1 < stops.length; i++) {
    L.polyline([[stops[i].lat, stops[i].lng], [stops[i + 1].lat, stops[i + 1].lng]], {color: 'blue'}).addTo(map);
}
` + mapFoot))

var drivingTemplate = template.Must(template.New("driving").Parse(mapHead + `var map = L.map('map').setView([{{.Start.Lat}}, {{.Start.Lng}}], 6);
` + mapTiles + `var line = L.polyline({{.Geometry}}, {color: 'blue', weight: 5}).addTo(map);
map.fitBounds(line.getBounds());

L.marker([{{.Start.Lat}}, {{.Start.Lng}}]).addTo(map).bindPopup(text('Start: ' + {{.Start.Name}}, true));
L.marker([{{.End.Lat}}, {{.End.Lng}}]).addTo(map).bindPopup(text('Destination: ' + {{.End.Name}}, true));

{{.Towns}}.forEach(function (t) {
    L.circleMarker([t.lat, t.lng], {color: 'orange'}).addTo(map).bindPopup(text(t.name));
});

L.control.scale().addTo(map);
var info = {{.Info}};
L.popup().setLatLng([{{.Mid.Lat}}, {{.Mid.Lng}}]).setContent(
    '<b>Distance:</b> ' + info.distance.toFixed(2) + ' km<br>' +
    '<b>Duration:</b> ' + info.duration.toFixed(2) + ' hr<br>' +
    '<b>Cost:</b> &#8377;' + info.cost.toFixed(2)
).openOn(map);
` + mapFoot))
