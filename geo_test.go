package turngraph

import "testing"

func TestBearingCardinalDirections(t *testing.T) {
	origin := GeoPoint{Lon: 0, Lat: 0}
	cases := []struct {
		name string
		to   GeoPoint
		want float64
	}{
		{"north", GeoPoint{Lon: 0, Lat: 1}, 0},
		{"east", GeoPoint{Lon: 1, Lat: 0}, 90},
		{"south", GeoPoint{Lon: 0, Lat: -1}, 180},
		{"west", GeoPoint{Lon: -1, Lat: 0}, 270},
	}
	for _, c := range cases {
		got := bearing(origin, c.to)
		if diff := angleBetween(got, c.want); diff > 0.5 {
			t.Errorf("%s: bearing(origin, %v) = %f, want ~%f", c.name, c.to, got, c.want)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		360:  0,
		-10:  350,
		370:  10,
		-370: 350,
	}
	for in, want := range cases {
		if got := normalizeAngle(in); got != want {
			t.Errorf("normalizeAngle(%f) = %f, want %f", in, got, want)
		}
	}
}

func TestComputeTurnAngleStraightAndUTurn(t *testing.T) {
	if got := computeTurnAngle(0, 0); got != 180 {
		t.Errorf("continuing on the same bearing should be a straight turn, got %f", got)
	}
	if got := computeTurnAngle(0, 180); got != 0 {
		t.Errorf("reversing bearing should be a u-turn (angle 0), got %f", got)
	}
}

func TestAngularDeviation(t *testing.T) {
	if got := angularDeviation(180); got != 0 {
		t.Errorf("straight ahead should have zero deviation, got %f", got)
	}
	if got := angularDeviation(90); got != 90 {
		t.Errorf("angularDeviation(90) = %f, want 90", got)
	}
	if got := angularDeviation(270); got != 90 {
		t.Errorf("angularDeviation(270) = %f, want 90", got)
	}
}

func TestAngleBetweenWrapsAroundNorth(t *testing.T) {
	if got := angleBetween(350, 10); got != 20 {
		t.Errorf("angleBetween(350, 10) = %f, want 20", got)
	}
	if got := angleBetween(10, 350); got != 20 {
		t.Errorf("angleBetween(10, 350) = %f, want 20", got)
	}
	if got := angleBetween(0, 180); got != 180 {
		t.Errorf("angleBetween(0, 180) = %f, want 180", got)
	}
}

func TestMidpointBearingBisectsShorterArc(t *testing.T) {
	if got := midpointBearing(0, 90); got != 45 {
		t.Errorf("midpointBearing(0, 90) = %f, want 45", got)
	}
	if got := midpointBearing(350, 10); got != 0 {
		t.Errorf("midpointBearing(350, 10) = %f, want 0", got)
	}
}

func TestMidpointBearingOppositeTieBreak(t *testing.T) {
	got := midpointBearing(0, 180)
	if got != 90 {
		t.Errorf("midpointBearing at exactly 180 degrees apart should break clockwise from a, got %f, want 90", got)
	}
}

func TestClassifyTurnAngleBuckets(t *testing.T) {
	cases := []struct {
		angle float64
		want  TurnType
	}{
		{0, TURN_UTURN},
		{5, TURN_UTURN},
		{355, TURN_UTURN},
		{25, TURN_SHARP_RIGHT},
		{60, TURN_RIGHT},
		{90, TURN_SLIGHT_RIGHT},
		{180, TURN_STRAIGHT},
		{230, TURN_SLIGHT_LEFT},
		{270, TURN_LEFT},
		{300, TURN_SHARP_LEFT},
		{330, TURN_SHARP_LEFT},
	}
	for _, c := range cases {
		if got := classifyTurnAngle(c.angle); got != c.want {
			t.Errorf("classifyTurnAngle(%f) = %s, want %s", c.angle, got, c.want)
		}
	}
}
