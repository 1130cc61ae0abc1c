package car

import (
	"github.com/sbeio/gosbe/flyweight"
	"github.com/sbeio/gosbe/primitive"
)

// BlockLength is the Car message's compiled fixed-block size.
const BlockLength = 47

// TemplateID is the Car message's templateId.
const TemplateID uint16 = 1

// SchemaID and SchemaVersion identify the schema Car belongs to.
const (
	SchemaID      uint16 = 6
	SchemaVersion uint16 = 0
)

const (
	serialNumberOffset   = 0
	modelYearOffset      = 8
	availableOffset      = 10
	codeOffset           = 11
	someNumbersOffset    = 12
	someNumbersElemSize  = 4
	someNumbersCount     = 5
	vehicleCodeOffset    = 32
	vehicleCodeLength    = 6
	extrasOffset         = 38
	engineOffset         = 39
	engineCapacityOffset = engineOffset + 0
	engineCylindersOffset = engineOffset + 2
	engineMfgCodeOffset  = engineOffset + 3
	engineMfgCodeLength  = 3
	boosterOffset        = engineOffset + 6
	boosterTypeOffset    = boosterOffset + 0
	boosterHorsePowerOffset = boosterOffset + 1

	engineMaxRpmConstant = 9000
	engineFuelConstant   = "Petrol"
)

// groupSizeEncodingLayout is the dimensions-header shape every Car group
// uses: a 2-byte blockLength followed by a 1-byte numInGroup (the classic
// SBE example schema's groupSizeEncoding composite — narrower than the
// runtime's own DefaultDimensionsLayout, which is why the layout is always
// schema-sourced rather than assumed).
func groupSizeEncodingLayout() flyweight.DimensionsLayout {
	return flyweight.DimensionsLayout{
		BlockLengthOffset: 0,
		BlockLengthType:   primitive.TypeUint16,
		NumInGroupOffset:  2,
		NumInGroupType:    primitive.TypeUint8,
		HeaderLength:      3,
		Order:             primitive.LittleEndianOrder,
	}
}

const fuelFigureEntryBlockLength = 6       // speed uint16 + mpg float32
const performanceFigureEntryBlockLength = 1 // octaneRating uint8
const accelerationEntryBlockLength = 6      // mph uint16 + seconds float32

// Car is the root flyweight for the Car message (§8 S1): a generated-style
// message type built directly on the flyweight package, the same way a
// compiled SBE message would be, but hand-written instead of code-genned.
type Car struct {
	flyweight.Message
}

// NewCar returns an unwrapped Car.
func NewCar() *Car {
	return &Car{Message: *flyweight.NewMessage()}
}

// WrapForEncode prepares c to write a new Car message at offset in buf.
func (c *Car) WrapForEncode(buf []byte, offset int) error {
	return c.Message.WrapForEncode(buf, offset, BlockLength)
}

// WrapForDecode prepares c to read a Car message at offset in buf, encoded
// with the given acting block length and version.
func (c *Car) WrapForDecode(buf []byte, offset, actingBlockLength int, actingVersion uint16) error {
	return c.Message.WrapForDecode(buf, offset, actingBlockLength, actingVersion, BlockLength)
}

// present reports whether a fixed-block field at offset/size lies within
// this message's acting block length (Invariant 5: a field an older
// encoder's shorter block length didn't reach reads as null, the same way
// a field added in a later schema version would for a decoder that hasn't
// caught up).
func (c *Car) present(offset, size int) bool {
	return c.Present(0, offset, size)
}

func (c *Car) SerialNumber() (uint64, error) {
	if !c.present(serialNumberOffset, 8) {
		return primitive.NullValue(primitive.TypeUint64), nil
	}
	return c.GetUint64(serialNumberOffset, primitive.LittleEndianOrder)
}

func (c *Car) PutSerialNumber(v uint64) error {
	return c.PutUint64(serialNumberOffset, primitive.LittleEndianOrder, v)
}

func (c *Car) ModelYear() (uint16, error) {
	if !c.present(modelYearOffset, 2) {
		return uint16(primitive.NullValue(primitive.TypeUint16)), nil
	}
	return c.GetUint16(modelYearOffset, primitive.LittleEndianOrder)
}

func (c *Car) PutModelYear(v uint16) error {
	return c.PutUint16(modelYearOffset, primitive.LittleEndianOrder, v)
}

func (c *Car) Available() (BooleanType, error) {
	if !c.present(availableOffset, 1) {
		return BooleanType(primitive.NullValue(primitive.TypeUint8)), nil
	}
	v, err := c.GetUint8(availableOffset)
	return BooleanType(v), err
}

func (c *Car) PutAvailable(v BooleanType) error {
	return c.PutUint8(availableOffset, uint8(v))
}

func (c *Car) Code() (Model, error) {
	if !c.present(codeOffset, 1) {
		return Model(primitive.NullValue(primitive.TypeChar)), nil
	}
	v, err := c.GetChar(codeOffset)
	return Model(v), err
}

func (c *Car) PutCode(v Model) error {
	return c.PutChar(codeOffset, byte(v))
}

// SomeNumber reads the i'th element (0..4) of the fixed int32 array.
func (c *Car) SomeNumber(i int) (int32, error) {
	offset := someNumbersOffset + i*someNumbersElemSize
	if !c.present(offset, someNumbersElemSize) {
		return int32(primitive.NullValue(primitive.TypeInt32)), nil
	}
	return c.GetInt32(offset, primitive.LittleEndianOrder)
}

func (c *Car) PutSomeNumber(i int, v int32) error {
	return c.PutInt32(someNumbersOffset+i*someNumbersElemSize, primitive.LittleEndianOrder, v)
}

// VehicleCode reads the fixed 6-byte character array.
func (c *Car) VehicleCode() ([]byte, error) {
	if !c.present(vehicleCodeOffset, vehicleCodeLength) {
		return make([]byte, vehicleCodeLength), nil
	}
	return c.GetBytes(vehicleCodeOffset, vehicleCodeLength)
}

func (c *Car) PutVehicleCode(v []byte) error {
	return c.PutBytes(vehicleCodeOffset, vehicleCodeLength, v)
}

func (c *Car) Extras() (OptionalExtras, error) {
	if !c.present(extrasOffset, 1) {
		return OptionalExtras(primitive.NullValue(primitive.TypeUint8)), nil
	}
	v, err := c.GetUint8(extrasOffset)
	return OptionalExtras(v), err
}

func (c *Car) PutExtras(v OptionalExtras) error {
	return c.PutUint8(extrasOffset, uint8(v))
}

func (c *Car) EngineCapacity() (uint16, error) {
	if !c.present(engineCapacityOffset, 2) {
		return uint16(primitive.NullValue(primitive.TypeUint16)), nil
	}
	return c.GetUint16(engineCapacityOffset, primitive.LittleEndianOrder)
}

func (c *Car) PutEngineCapacity(v uint16) error {
	return c.PutUint16(engineCapacityOffset, primitive.LittleEndianOrder, v)
}

func (c *Car) EngineNumCylinders() (uint8, error) {
	if !c.present(engineCylindersOffset, 1) {
		return uint8(primitive.NullValue(primitive.TypeUint8)), nil
	}
	return c.GetUint8(engineCylindersOffset)
}

func (c *Car) PutEngineNumCylinders(v uint8) error {
	return c.PutUint8(engineCylindersOffset, v)
}

// EngineMaxRpm is a schema-constant field: it never occupies wire space.
// The value always reads back as the compiled constant regardless of what
// was encoded.
func (c *Car) EngineMaxRpm() uint16 { return engineMaxRpmConstant }

func (c *Car) EngineManufacturerCode() ([]byte, error) {
	if !c.present(engineMfgCodeOffset, engineMfgCodeLength) {
		return make([]byte, engineMfgCodeLength), nil
	}
	return c.GetBytes(engineMfgCodeOffset, engineMfgCodeLength)
}

func (c *Car) PutEngineManufacturerCode(v []byte) error {
	return c.PutBytes(engineMfgCodeOffset, engineMfgCodeLength, v)
}

// EngineFuel is a schema-constant field, same as EngineMaxRpm.
func (c *Car) EngineFuel() string { return engineFuelConstant }

func (c *Car) BoosterType() (BoostType, error) {
	if !c.present(boosterTypeOffset, 1) {
		return BoostType(primitive.NullValue(primitive.TypeChar)), nil
	}
	v, err := c.GetChar(boosterTypeOffset)
	return BoostType(v), err
}

func (c *Car) PutBoosterType(v BoostType) error {
	return c.PutChar(boosterTypeOffset, byte(v))
}

func (c *Car) BoosterHorsePower() (uint8, error) {
	if !c.present(boosterHorsePowerOffset, 1) {
		return uint8(primitive.NullValue(primitive.TypeUint8)), nil
	}
	return c.GetUint8(boosterHorsePowerOffset)
}

func (c *Car) PutBoosterHorsePower(v uint8) error {
	return c.PutUint8(boosterHorsePowerOffset, v)
}

// SetFuelFiguresCount begins encoding the fuelFigures repeating group with
// n entries.
func (c *Car) SetFuelFiguresCount(n uint16) (*FuelFigures, error) {
	g, err := flyweight.SetCount(&c.Message, n, fuelFigureEntryBlockLength, groupSizeEncodingLayout())
	if err != nil {
		return nil, err
	}

	return &FuelFigures{Group: g}, nil
}

// FuelFigures begins decoding the fuelFigures repeating group.
func (c *Car) FuelFigures() (*FuelFigures, error) {
	g, err := flyweight.GetGroup(&c.Message, groupSizeEncodingLayout())
	if err != nil {
		return nil, err
	}

	return &FuelFigures{Group: g}, nil
}

// SetPerformanceFiguresCount begins encoding the performanceFigures group.
func (c *Car) SetPerformanceFiguresCount(n uint16) (*PerformanceFigures, error) {
	g, err := flyweight.SetCount(&c.Message, n, performanceFigureEntryBlockLength, groupSizeEncodingLayout())
	if err != nil {
		return nil, err
	}

	return &PerformanceFigures{Group: g}, nil
}

// PerformanceFigures begins decoding the performanceFigures group.
func (c *Car) PerformanceFigures() (*PerformanceFigures, error) {
	g, err := flyweight.GetGroup(&c.Message, groupSizeEncodingLayout())
	if err != nil {
		return nil, err
	}

	return &PerformanceFigures{Group: g}, nil
}

func (c *Car) PutManufacturer(v string) error {
	return flyweight.PutVarData(&c.Message, []byte(v), flyweight.VarDataLayoutUint8())
}

func (c *Car) Manufacturer() (string, error) {
	data, err := flyweight.GetVarData(&c.Message, flyweight.VarDataLayoutUint8())
	return string(data), err
}

// PutModelName writes the `model` var-data field (named to avoid colliding
// with the Model enum type).
func (c *Car) PutModelName(v string) error {
	return flyweight.PutVarData(&c.Message, []byte(v), flyweight.VarDataLayoutUint8())
}

func (c *Car) ModelName() (string, error) {
	data, err := flyweight.GetVarData(&c.Message, flyweight.VarDataLayoutUint8())
	return string(data), err
}

func (c *Car) PutActivationCode(v string) error {
	return flyweight.PutVarData(&c.Message, []byte(v), flyweight.VarDataLayoutUint8())
}

func (c *Car) ActivationCode() (string, error) {
	data, err := flyweight.GetVarData(&c.Message, flyweight.VarDataLayoutUint8())
	return string(data), err
}
