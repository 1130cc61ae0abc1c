package car

import (
	"github.com/sbeio/gosbe/flyweight"
	"github.com/sbeio/gosbe/primitive"
)

const (
	fuelFigureSpeedOffset = 0
	fuelFigureMpgOffset   = 2

	performanceFigureOctaneRatingOffset = 0

	accelerationMphOffset     = 0
	accelerationSecondsOffset = 2
)

// FuelFigures wraps the fuelFigures repeating group (speed, mpg, then a
// var-data manufacturer-specific name per entry).
type FuelFigures struct {
	*flyweight.Group
}

// Next advances to the next fuelFigures entry.
func (g *FuelFigures) Next() (*FuelFigureEntry, error) {
	e, err := g.Group.Next()
	if err != nil {
		return nil, err
	}

	return &FuelFigureEntry{Entry: e}, nil
}

// FuelFigureEntry is one element of the fuelFigures group.
type FuelFigureEntry struct {
	*flyweight.Entry
}

func (e *FuelFigureEntry) Speed() (uint16, error) {
	return e.GetUint16(fuelFigureSpeedOffset, primitive.LittleEndianOrder)
}

func (e *FuelFigureEntry) PutSpeed(v uint16) error {
	return e.PutUint16(fuelFigureSpeedOffset, primitive.LittleEndianOrder, v)
}

func (e *FuelFigureEntry) Mpg() (float32, error) {
	return e.GetFloat32(fuelFigureMpgOffset, primitive.LittleEndianOrder)
}

func (e *FuelFigureEntry) PutMpg(v float32) error {
	return e.PutFloat32(fuelFigureMpgOffset, primitive.LittleEndianOrder, v)
}

func (e *FuelFigureEntry) Name() (string, error) {
	data, err := flyweight.GetVarData(e.Entry, flyweight.VarDataLayoutUint8())
	return string(data), err
}

func (e *FuelFigureEntry) PutName(v string) error {
	return flyweight.PutVarData(e.Entry, []byte(v), flyweight.VarDataLayoutUint8())
}

// PerformanceFigures wraps the performanceFigures repeating group (an
// octaneRating per entry, followed by its own nested acceleration group —
// the group-of-groups construct).
type PerformanceFigures struct {
	*flyweight.Group
}

// Next advances to the next performanceFigures entry.
func (g *PerformanceFigures) Next() (*PerformanceFigureEntry, error) {
	e, err := g.Group.Next()
	if err != nil {
		return nil, err
	}

	return &PerformanceFigureEntry{Entry: e}, nil
}

// PerformanceFigureEntry is one element of the performanceFigures group.
type PerformanceFigureEntry struct {
	*flyweight.Entry
}

func (e *PerformanceFigureEntry) OctaneRating() (uint8, error) {
	return e.GetUint8(performanceFigureOctaneRatingOffset)
}

func (e *PerformanceFigureEntry) PutOctaneRating(v uint8) error {
	return e.PutUint8(performanceFigureOctaneRatingOffset, v)
}

// SetAccelerationCount begins encoding this entry's nested acceleration
// group.
func (e *PerformanceFigureEntry) SetAccelerationCount(n uint16) (*Accelerations, error) {
	g, err := flyweight.SetCount(e.Entry, n, accelerationEntryBlockLength, groupSizeEncodingLayout())
	if err != nil {
		return nil, err
	}

	return &Accelerations{Group: g}, nil
}

// Acceleration begins decoding this entry's nested acceleration group.
func (e *PerformanceFigureEntry) Acceleration() (*Accelerations, error) {
	g, err := flyweight.GetGroup(e.Entry, groupSizeEncodingLayout())
	if err != nil {
		return nil, err
	}

	return &Accelerations{Group: g}, nil
}

// Accelerations wraps the nested acceleration repeating group.
type Accelerations struct {
	*flyweight.Group
}

// Next advances to the next acceleration entry.
func (g *Accelerations) Next() (*AccelerationEntry, error) {
	e, err := g.Group.Next()
	if err != nil {
		return nil, err
	}

	return &AccelerationEntry{Entry: e}, nil
}

// AccelerationEntry is one element of the nested acceleration group.
type AccelerationEntry struct {
	*flyweight.Entry
}

func (e *AccelerationEntry) Mph() (uint16, error) {
	return e.GetUint16(accelerationMphOffset, primitive.LittleEndianOrder)
}

func (e *AccelerationEntry) PutMph(v uint16) error {
	return e.PutUint16(accelerationMphOffset, primitive.LittleEndianOrder, v)
}

func (e *AccelerationEntry) Seconds() (float32, error) {
	return e.GetFloat32(accelerationSecondsOffset, primitive.LittleEndianOrder)
}

func (e *AccelerationEntry) PutSeconds(v float32) error {
	return e.PutFloat32(accelerationSecondsOffset, primitive.LittleEndianOrder, v)
}
