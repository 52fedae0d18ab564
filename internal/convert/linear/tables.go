package linear

import "github.com/aalvaropc/unitconv/internal/domain"

// Length, base meter.
var Length = NewTable(domain.FamilyLength,
	Unit{Key: "m", Label: "Meters (m)", PerBase: 1.0, Aliases: []string{"meters", "metros"}},
	Unit{Key: "cm", Label: "Centimeters (cm)", PerBase: 100.0, Aliases: []string{"centimeters", "centimetros"}},
	Unit{Key: "mm", Label: "Millimeters (mm)", PerBase: 1000.0, Aliases: []string{"millimeters", "milimetros"}},
	Unit{Key: "km", Label: "Kilometers (km)", PerBase: 0.001, Aliases: []string{"kilometers", "kilometros"}},
	Unit{Key: "in", Label: "Inches (in)", PerBase: 39.3701, Aliases: []string{"inches", "pulgadas"}},
	Unit{Key: "ft", Label: "Feet (ft)", PerBase: 3.28084, Aliases: []string{"feet", "pies"}},
	Unit{Key: "yd", Label: "Yards (yd)", PerBase: 1.09361, Aliases: []string{"yards", "yardas"}},
	Unit{Key: "mi", Label: "Miles", PerBase: 0.000621371, Aliases: []string{"miles", "millas"}},
	Unit{Key: "um", Label: "Micrometers (µm)", PerBase: 1e6, Aliases: []string{"µm", "micrometers", "micrometros"}},
)

// Mass, base kilogram.
var Mass = NewTable(domain.FamilyMass,
	Unit{Key: "kg", Label: "Kilograms (kg)", PerBase: 1.0, Aliases: []string{"kilograms", "kilogramos"}},
	Unit{Key: "g", Label: "Grams (g)", PerBase: 1000.0, Aliases: []string{"grams", "gramos"}},
	Unit{Key: "lb", Label: "Pounds (lb)", PerBase: 2.20462, Aliases: []string{"pounds", "libras"}},
	Unit{Key: "mg", Label: "Milligrams (mg)", PerBase: 1e6, Aliases: []string{"milligrams", "miligramos"}},
	Unit{Key: "t", Label: "Tonnes (t)", PerBase: 0.001, Aliases: []string{"tonnes", "toneladas"}},
	Unit{Key: "oz", Label: "Ounces (oz)", PerBase: 35.274, Aliases: []string{"ounces", "onzas"}},
	Unit{Key: "st", Label: "Stone", PerBase: 0.157473, Aliases: []string{"stone", "piedras"}},
	Unit{Key: "metric_ton", Label: "Metric tons", PerBase: 0.001, Aliases: []string{"toneladas_metricas"}},
	Unit{Key: "short_ton", Label: "Short tons", PerBase: 0.00110231, Aliases: []string{"toneladas_cortas"}},
)

// Area, base square meter.
var Area = NewTable(domain.FamilyArea,
	Unit{Key: "m2", Label: "Square meters (m²)", PerBase: 1.0, Aliases: []string{"m²", "metros_cuadrados"}},
	Unit{Key: "cm2", Label: "Square centimeters (cm²)", PerBase: 10000.0, Aliases: []string{"cm²", "centimetros_cuadrados"}},
	Unit{Key: "mm2", Label: "Square millimeters (mm²)", PerBase: 1e6, Aliases: []string{"mm²", "milimetros_cuadrados"}},
	Unit{Key: "km2", Label: "Square kilometers (km²)", PerBase: 0.000001, Aliases: []string{"km²", "kilometros_cuadrados"}},
	Unit{Key: "in2", Label: "Square inches (in²)", PerBase: 1550.0031, Aliases: []string{"in²", "pulgadas_cuadradas"}},
	Unit{Key: "ft2", Label: "Square feet (ft²)", PerBase: 10.7639, Aliases: []string{"ft²", "pies_cuadrados"}},
	Unit{Key: "yd2", Label: "Square yards (yd²)", PerBase: 1.19599, Aliases: []string{"yd²", "yardas_cuadradas"}},
	Unit{Key: "ha", Label: "Hectares (ha)", PerBase: 0.0001, Aliases: []string{"hectares", "hectareas"}},
	Unit{Key: "ac", Label: "Acres", PerBase: 0.000247105, Aliases: []string{"acres"}},
)

// Volume, base liter.
var Volume = NewTable(domain.FamilyVolume,
	Unit{Key: "l", Label: "Liters (L)", PerBase: 1.0, Aliases: []string{"liters", "litros"}},
	Unit{Key: "ml", Label: "Milliliters (mL)", PerBase: 1000.0, Aliases: []string{"milliliters", "mililitros"}},
	Unit{Key: "cm3", Label: "Cubic centimeters (cm³)", PerBase: 1000.0, Aliases: []string{"cm³", "cc", "centimetros_cubicos"}},
	Unit{Key: "m3", Label: "Cubic meters (m³)", PerBase: 0.001, Aliases: []string{"m³", "metros_cubicos"}},
	Unit{Key: "gal", Label: "Gallons", PerBase: 0.264172, Aliases: []string{"gallons", "galones"}},
	Unit{Key: "fl_oz", Label: "Fluid ounces (fl oz)", PerBase: 33.814, Aliases: []string{"onzas_liquidas"}},
	Unit{Key: "pt", Label: "Pints", PerBase: 2.11338, Aliases: []string{"pints", "pintas"}},
	Unit{Key: "qt", Label: "Quarts", PerBase: 1.05669, Aliases: []string{"quarts", "cuartos"}},
	Unit{Key: "dl", Label: "Deciliters (dL)", PerBase: 10.0, Aliases: []string{"deciliters", "decilitros"}},
	Unit{Key: "hl", Label: "Hectoliters (hL)", PerBase: 0.01, Aliases: []string{"hectoliters", "hectolitros"}},
	Unit{Key: "ul", Label: "Microliters (µL)", PerBase: 1e6, Aliases: []string{"µl", "microliters", "microlitros"}},
	Unit{Key: "nl", Label: "Nanoliters (nL)", PerBase: 1e9, Aliases: []string{"nanoliters", "nanolitros"}},
	Unit{Key: "bbl", Label: "Barrels", PerBase: 0.00628981, Aliases: []string{"barrels", "barriles"}},
	Unit{Key: "ft3", Label: "Cubic feet (ft³)", PerBase: 0.0353147, Aliases: []string{"ft³", "pies_cubicos"}},
	Unit{Key: "in3", Label: "Cubic inches (in³)", PerBase: 61.0237, Aliases: []string{"in³", "pulgadas_cubicas"}},
	Unit{Key: "yd3", Label: "Cubic yards (yd³)", PerBase: 0.00130795, Aliases: []string{"yd³", "yardas_cubicas"}},
)

// Density is kept as a linear table: its factors are "kg/m³ per unit", so
// PerBase is the reciprocal.
var Density = NewTable(domain.FamilyDensity,
	Unit{Key: "kg_m3", Label: "kg/m³", PerBase: 1.0, Aliases: []string{"kg/m3", "kg/m³"}},
	Unit{Key: "g_cm3", Label: "g/cm³", PerBase: 1 / 1000.0, Aliases: []string{"g/cm3", "g/cm³", "g/ml"}},
	Unit{Key: "g_l", Label: "g/L", PerBase: 1.0, Aliases: []string{"g/l"}},
	Unit{Key: "lb_ft3", Label: "lb/ft³", PerBase: 1 / 16.0185, Aliases: []string{"lb/ft3", "lb/ft³"}},
	Unit{Key: "lb_in3", Label: "lb/in³", PerBase: 1 / 27679.9, Aliases: []string{"lb/in3", "lb/in³"}},
)

// Pressure, base pascal.
var Pressure = NewTable(domain.FamilyPressure,
	Unit{Key: "pa", Label: "Pascals (Pa)", PerBase: 1.0, Aliases: []string{"pascals", "pascales"}},
	Unit{Key: "kpa", Label: "Kilopascals (kPa)", PerBase: 0.001, Aliases: []string{"kilopascals", "kilopascales"}},
	Unit{Key: "bar", Label: "Bar", PerBase: 0.00001},
	Unit{Key: "atm", Label: "Atmospheres (atm)", PerBase: 9.8692e-6, Aliases: []string{"atmospheres", "atmosferas"}},
	Unit{Key: "mmhg", Label: "mmHg", PerBase: 0.00750062},
	Unit{Key: "psi", Label: "PSI", PerBase: 0.000145038},
	Unit{Key: "torr", Label: "Torr", PerBase: 0.00750062},
	Unit{Key: "kgf_cm2", Label: "kgf/cm²", PerBase: 1.01972e-5, Aliases: []string{"kgf/cm2", "kgf/cm²"}},
	Unit{Key: "inhg", Label: "inHg", PerBase: 0.000295300},
	Unit{Key: "inh2o", Label: "inH2O", PerBase: 0.00401463},
	Unit{Key: "mmh2o", Label: "mmH2O", PerBase: 0.101972},
)

// Energy, base joule.
var Energy = NewTable(domain.FamilyEnergy,
	Unit{Key: "j", Label: "Joules (J)", PerBase: 1.0, Aliases: []string{"joules"}},
	Unit{Key: "cal", Label: "Calories (cal)", PerBase: 0.239006, Aliases: []string{"calories", "calorias"}},
	Unit{Key: "kcal", Label: "Kilocalories (kcal)", PerBase: 0.000239006, Aliases: []string{"kilocalories", "kilocalorias"}},
	Unit{Key: "ev", Label: "Electronvolts (eV)", PerBase: 6.242e18, Aliases: []string{"electronvolts"}},
	Unit{Key: "kj", Label: "Kilojoules (kJ)", PerBase: 0.001, Aliases: []string{"kilojoules"}},
	Unit{Key: "btu", Label: "BTU", PerBase: 0.000947817},
	Unit{Key: "wh", Label: "Watt-hours (Wh)", PerBase: 0.000277778, Aliases: []string{"watt_hours", "vatios_hora"}},
	Unit{Key: "kwh", Label: "Kilowatt-hours (kWh)", PerBase: 2.77778e-7, Aliases: []string{"kilowatt_hours", "kilovatios_hora"}},
)

// Velocity, base meter per second.
var Velocity = NewTable(domain.FamilyVelocity,
	Unit{Key: "m_s", Label: "m/s", PerBase: 1.0, Aliases: []string{"m/s"}},
	Unit{Key: "km_h", Label: "km/h", PerBase: 3.6, Aliases: []string{"km/h", "kph"}},
	Unit{Key: "mph", Label: "mph", PerBase: 2.23694},
	Unit{Key: "ft_s", Label: "ft/s", PerBase: 3.28084, Aliases: []string{"ft/s"}},
	Unit{Key: "kn", Label: "Knots", PerBase: 1.94384, Aliases: []string{"knots", "nudos"}},
)

// Tables returns every linear table keyed by family.
func Tables() map[domain.Family]*Table {
	return map[domain.Family]*Table{
		domain.FamilyLength:   Length,
		domain.FamilyMass:     Mass,
		domain.FamilyArea:     Area,
		domain.FamilyVolume:   Volume,
		domain.FamilyDensity:  Density,
		domain.FamilyPressure: Pressure,
		domain.FamilyEnergy:   Energy,
		domain.FamilyVelocity: Velocity,
	}
}
