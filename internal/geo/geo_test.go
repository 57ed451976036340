package geo

import "testing"

func TestDistanceMiles(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
	}{
		{
			name: "same point",
			lat1: 36.1627, lon1: -86.7816,
			lat2: 36.1627, lon2: -86.7816,
			want: 0,
		},
		{
			name: "one degree of latitude",
			lat1: 0, lon1: 0,
			lat2: 1, lon2: 0,
			want: 69.1,
		},
		{
			name: "one degree of longitude at the equator",
			lat1: 0, lon1: 0,
			lat2: 0, lon2: 1,
			want: 69.1,
		},
		{
			name: "antipodal points",
			lat1: 0, lon1: 0,
			lat2: 0, lon2: 180,
			want: 12437.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceMiles(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if got != tt.want {
				t.Errorf("DistanceMiles() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistanceMilesSymmetry(t *testing.T) {
	forward := DistanceMiles(36.1627, -86.7816, 40.7128, -74.0060)
	backward := DistanceMiles(40.7128, -74.0060, 36.1627, -86.7816)
	if forward != backward {
		t.Errorf("distance is not symmetric: %v vs %v", forward, backward)
	}
	if forward <= 0 {
		t.Errorf("expected positive distance, got %v", forward)
	}
}
