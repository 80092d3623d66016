package cube

import "github.com/brianvoe/gofakeit/v6"

// The static domain of the synthetic cube. Months map onto trimesters by
// position: Mes[i] belongs to trimester i/3+1.
var (
	genYears    = []int{2022, 2023, 2024}
	genMonths   = []string{"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio", "Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"}
	genRegions  = []string{"Norte", "Sur", "Este", "Oeste"}
	genChannels = []string{"Online", "Tienda", "Mayorista"}

	genProducts = []struct {
		name  string
		price float64
	}{
		{"Laptop", 950.0},
		{"Teléfono", 620.0},
		{"Tablet", 380.0},
		{"Monitor", 240.0},
		{"Auriculares", 75.0},
	}
)

// Generate builds the synthetic sales dataset the service runs on when no
// external source is configured. The same seed always produces the same
// dataset, so every endpoint is reproducible across restarts.
func Generate(seed int64) Dataset {
	faker := gofakeit.NewUnlocked(seed)

	var ds Dataset
	for _, year := range genYears {
		for monthIdx, month := range genMonths {
			for _, region := range genRegions {
				for _, channel := range genChannels {
					for _, product := range genProducts {
						// Not every combination sells every month.
						if !faker.Bool() {
							continue
						}
						qty := faker.Number(1, 50)
						price := product.price * faker.Float64Range(0.8, 1.2)
						ds = append(ds, Record{
							Anio:      year,
							Trimestre: monthIdx/3 + 1,
							Mes:       month,
							Region:    region,
							Canal:     channel,
							Producto:  product.name,
							Cantidad:  qty,
							Ventas:    Round2(float64(qty) * price),
						})
					}
				}
			}
		}
	}
	return ds
}
