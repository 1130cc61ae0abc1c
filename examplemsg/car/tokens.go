package car

import (
	"github.com/sbeio/gosbe/ir"
	"github.com/sbeio/gosbe/primitive"
)

// HeaderTokens returns the messageHeader composite's token list: the
// standard four-field envelope (blockLength, templateId, schemaId,
// version) every message is prefixed with.
func HeaderTokens() []ir.Token {
	return []ir.Token{
		{Signal: ir.SignalBeginComposite, Name: "messageHeader", EncodedLength: 8, ComponentTokenCount: 6},
		{Signal: ir.SignalEncoding, Name: "blockLength", PrimitiveType: primitive.TypeUint16, ByteOrder: primitive.LittleEndianOrder, Offset: 0, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "templateId", PrimitiveType: primitive.TypeUint16, ByteOrder: primitive.LittleEndianOrder, Offset: 2, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "schemaId", PrimitiveType: primitive.TypeUint16, ByteOrder: primitive.LittleEndianOrder, Offset: 4, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "version", PrimitiveType: primitive.TypeUint16, ByteOrder: primitive.LittleEndianOrder, Offset: 6, EncodedLength: 2},
		{Signal: ir.SignalEndComposite, Name: "messageHeader"},
	}
}

// MessageTokens returns the Car message's hand-built token list: the same
// layout car.go's flyweight accessors implement, described instead as a
// linearized IR so otf.Decode can walk it without any generated code. The
// two are exercised side by side to prove OTF decoding and flyweight
// decoding of identical bytes agree.
func MessageTokens() []ir.Token {
	var t []ir.Token

	t = append(t, ir.Token{Signal: ir.SignalBeginMessage, Name: "Car", ComponentTokenCount: 98})

	t = append(t, scalarField("serialNumber", 1, primitive.TypeUint64, 0, 8)...)
	t = append(t, scalarField("modelYear", 2, primitive.TypeUint16, 8, 2)...)

	t = append(t,
		ir.Token{Signal: ir.SignalBeginField, Name: "available", FieldID: 3, ComponentTokenCount: 6},
		ir.Token{Signal: ir.SignalBeginEnum, Name: "BooleanType", PrimitiveType: primitive.TypeUint8, Offset: 10, EncodedLength: 1, ComponentTokenCount: 4},
		ir.Token{Signal: ir.SignalValidValue, Name: "T", ConstValue: "1"},
		ir.Token{Signal: ir.SignalValidValue, Name: "F", ConstValue: "0"},
		ir.Token{Signal: ir.SignalEndEnum, Name: "BooleanType"},
		ir.Token{Signal: ir.SignalEndField, Name: "available"},
	)

	t = append(t,
		ir.Token{Signal: ir.SignalBeginField, Name: "code", FieldID: 4, ComponentTokenCount: 7},
		ir.Token{Signal: ir.SignalBeginEnum, Name: "Model", PrimitiveType: primitive.TypeChar, Offset: 11, EncodedLength: 1, ComponentTokenCount: 5},
		ir.Token{Signal: ir.SignalValidValue, Name: "A", ConstValue: "A"},
		ir.Token{Signal: ir.SignalValidValue, Name: "B", ConstValue: "B"},
		ir.Token{Signal: ir.SignalValidValue, Name: "C", ConstValue: "C"},
		ir.Token{Signal: ir.SignalEndEnum, Name: "Model"},
		ir.Token{Signal: ir.SignalEndField, Name: "code"},
	)

	t = append(t, scalarField("someNumbers", 5, primitive.TypeInt32, 12, someNumbersCount*someNumbersElemSize)...)
	t = append(t, scalarField("vehicleCode", 6, primitive.TypeChar, vehicleCodeOffset, vehicleCodeLength)...)

	t = append(t,
		ir.Token{Signal: ir.SignalBeginField, Name: "extras", FieldID: 7, ComponentTokenCount: 7},
		ir.Token{Signal: ir.SignalBeginSet, Name: "OptionalExtras", PrimitiveType: primitive.TypeUint8, Offset: extrasOffset, EncodedLength: 1, ComponentTokenCount: 5},
		ir.Token{Signal: ir.SignalChoice, Name: "cruiseControl", Offset: 0},
		ir.Token{Signal: ir.SignalChoice, Name: "sportsPack", Offset: 1},
		ir.Token{Signal: ir.SignalChoice, Name: "sunRoof", Offset: 2},
		ir.Token{Signal: ir.SignalEndSet, Name: "OptionalExtras"},
		ir.Token{Signal: ir.SignalEndField, Name: "extras"},
	)

	// The booster sub-composite is flattened directly into Engine's member
	// list (capacity, numCylinders, the maxRpm constant, manufacturerCode,
	// the fuel constant, then boosterType/boosterHorsePower) rather than
	// nested as its own
	// BeginComposite/EndComposite span, since decodeComposite only walks
	// one flat member range.
	t = append(t,
		ir.Token{Signal: ir.SignalBeginField, Name: "engine", FieldID: 8, ComponentTokenCount: 11},
		ir.Token{Signal: ir.SignalBeginComposite, Name: "Engine", Offset: engineOffset, EncodedLength: BlockLength - engineOffset, ComponentTokenCount: 9},
		ir.Token{Signal: ir.SignalEncoding, Name: "capacity", PrimitiveType: primitive.TypeUint16, ByteOrder: primitive.LittleEndianOrder, Offset: 0, EncodedLength: 2},
		ir.Token{Signal: ir.SignalEncoding, Name: "numCylinders", PrimitiveType: primitive.TypeUint8, Offset: 2, EncodedLength: 1},
		ir.Token{Signal: ir.SignalEncoding, Name: "maxRpm", PrimitiveType: primitive.TypeUint16, Offset: 3, EncodedLength: 0, Presence: ir.PresenceConstant, ConstValue: "9000"},
		ir.Token{Signal: ir.SignalEncoding, Name: "manufacturerCode", PrimitiveType: primitive.TypeChar, Offset: 3, EncodedLength: engineMfgCodeLength},
		ir.Token{Signal: ir.SignalEncoding, Name: "fuel", PrimitiveType: primitive.TypeChar, Offset: 6, EncodedLength: 0, Presence: ir.PresenceConstant, ConstValue: engineFuelConstant},
		ir.Token{Signal: ir.SignalEncoding, Name: "boosterType", PrimitiveType: primitive.TypeChar, Offset: 6, EncodedLength: 1},
		ir.Token{Signal: ir.SignalEncoding, Name: "boosterHorsePower", PrimitiveType: primitive.TypeUint8, Offset: 7, EncodedLength: 1},
		ir.Token{Signal: ir.SignalEndComposite, Name: "Engine"},
		ir.Token{Signal: ir.SignalEndField, Name: "engine"},
	)

	t = append(t, fuelFiguresGroupTokens()...)
	t = append(t, performanceFiguresGroupTokens()...)

	t = append(t, varDataField("manufacturer", 11)...)
	t = append(t, varDataField("model", 12)...)
	t = append(t, varDataField("activationCode", 13)...)

	t = append(t, ir.Token{Signal: ir.SignalEndMessage, Name: "Car"})

	return t
}

func scalarField(name string, fieldID int, pt primitive.Type, offset, length int) []ir.Token {
	return []ir.Token{
		{Signal: ir.SignalBeginField, Name: name, FieldID: fieldID, ComponentTokenCount: 3},
		{Signal: ir.SignalEncoding, Name: name, PrimitiveType: pt, ByteOrder: primitive.LittleEndianOrder, Offset: offset, EncodedLength: length},
		{Signal: ir.SignalEndField, Name: name},
	}
}

// varDataField returns the 5-token span for one 1-byte-length-prefixed
// var-data field: BeginVarData, a length-composite placeholder (unused by
// the decoder but present the way a compiled schema's IR always carries
// one), the length token itself, the data token, EndVarData.
func varDataField(name string, fieldID int) []ir.Token {
	return []ir.Token{
		{Signal: ir.SignalBeginVarData, Name: name, FieldID: fieldID, ComponentTokenCount: 5},
		{Signal: ir.SignalBeginComposite, Name: "varDataEncoding"},
		{Signal: ir.SignalEncoding, Name: "length", PrimitiveType: primitive.TypeUint8, Offset: 0, EncodedLength: 1},
		{Signal: ir.SignalEncoding, Name: "varData", PrimitiveType: primitive.TypeChar, Offset: 1, EncodedLength: ir.VarLengthSentinel},
		{Signal: ir.SignalEndVarData, Name: name},
	}
}

func fuelFiguresGroupTokens() []ir.Token {
	return []ir.Token{
		{Signal: ir.SignalBeginGroup, Name: "fuelFigures", FieldID: 9, ComponentTokenCount: 17},
		{Signal: ir.SignalBeginComposite, Name: "groupSizeEncoding", EncodedLength: 3, ComponentTokenCount: 4},
		{Signal: ir.SignalEncoding, Name: "blockLength", PrimitiveType: primitive.TypeUint16, Offset: 0, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "numInGroup", PrimitiveType: primitive.TypeUint8, Offset: 2, EncodedLength: 1},
		{Signal: ir.SignalEndComposite, Name: "groupSizeEncoding"},
		{Signal: ir.SignalBeginField, Name: "speed", FieldID: 1, ComponentTokenCount: 3},
		{Signal: ir.SignalEncoding, Name: "speed", PrimitiveType: primitive.TypeUint16, Offset: fuelFigureSpeedOffset, EncodedLength: 2},
		{Signal: ir.SignalEndField, Name: "speed"},
		{Signal: ir.SignalBeginField, Name: "mpg", FieldID: 2, ComponentTokenCount: 3},
		{Signal: ir.SignalEncoding, Name: "mpg", PrimitiveType: primitive.TypeFloat32, Offset: fuelFigureMpgOffset, EncodedLength: 4},
		{Signal: ir.SignalEndField, Name: "mpg"},
		{Signal: ir.SignalBeginVarData, Name: "name", FieldID: 3, ComponentTokenCount: 5},
		{Signal: ir.SignalBeginComposite, Name: "varDataEncoding"},
		{Signal: ir.SignalEncoding, Name: "length", PrimitiveType: primitive.TypeUint8, Offset: 0, EncodedLength: 1},
		{Signal: ir.SignalEncoding, Name: "varData", PrimitiveType: primitive.TypeChar, Offset: 1, EncodedLength: ir.VarLengthSentinel},
		{Signal: ir.SignalEndVarData, Name: "name"},
		{Signal: ir.SignalEndGroup, Name: "fuelFigures"},
	}
}

func performanceFiguresGroupTokens() []ir.Token {
	return []ir.Token{
		{Signal: ir.SignalBeginGroup, Name: "performanceFigures", FieldID: 10, ComponentTokenCount: 21},
		{Signal: ir.SignalBeginComposite, Name: "groupSizeEncoding", EncodedLength: 3, ComponentTokenCount: 4},
		{Signal: ir.SignalEncoding, Name: "blockLength", PrimitiveType: primitive.TypeUint16, Offset: 0, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "numInGroup", PrimitiveType: primitive.TypeUint8, Offset: 2, EncodedLength: 1},
		{Signal: ir.SignalEndComposite, Name: "groupSizeEncoding"},
		{Signal: ir.SignalBeginField, Name: "octaneRating", FieldID: 1, ComponentTokenCount: 3},
		{Signal: ir.SignalEncoding, Name: "octaneRating", PrimitiveType: primitive.TypeUint8, Offset: performanceFigureOctaneRatingOffset, EncodedLength: 1},
		{Signal: ir.SignalEndField, Name: "octaneRating"},
		{Signal: ir.SignalBeginGroup, Name: "acceleration", FieldID: 2, ComponentTokenCount: 12},
		{Signal: ir.SignalBeginComposite, Name: "groupSizeEncoding", EncodedLength: 3, ComponentTokenCount: 4},
		{Signal: ir.SignalEncoding, Name: "blockLength", PrimitiveType: primitive.TypeUint16, Offset: 0, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "numInGroup", PrimitiveType: primitive.TypeUint8, Offset: 2, EncodedLength: 1},
		{Signal: ir.SignalEndComposite, Name: "groupSizeEncoding"},
		{Signal: ir.SignalBeginField, Name: "mph", FieldID: 1, ComponentTokenCount: 3},
		{Signal: ir.SignalEncoding, Name: "mph", PrimitiveType: primitive.TypeUint16, Offset: accelerationMphOffset, EncodedLength: 2},
		{Signal: ir.SignalEndField, Name: "mph"},
		{Signal: ir.SignalBeginField, Name: "seconds", FieldID: 2, ComponentTokenCount: 3},
		{Signal: ir.SignalEncoding, Name: "seconds", PrimitiveType: primitive.TypeFloat32, Offset: accelerationSecondsOffset, EncodedLength: 4},
		{Signal: ir.SignalEndField, Name: "seconds"},
		{Signal: ir.SignalEndGroup, Name: "acceleration"},
		{Signal: ir.SignalEndGroup, Name: "performanceFigures"},
	}
}

// NewCollection builds an ir.Collection containing the Car message
// template, for use with schemareg/otf-driven decoding alongside the
// hand-written flyweight accessors in car.go.
func NewCollection() (*ir.Collection, error) {
	col, err := ir.NewCollection(HeaderTokens(), ir.SchemaMeta{
		Package:         "examplemsg",
		Namespace:       "car",
		SemanticVersion: "1.0.0",
	})
	if err != nil {
		return nil, err
	}

	if err := col.AddMessage(TemplateID, SchemaVersion, MessageTokens()); err != nil {
		return nil, err
	}

	return col, nil
}
