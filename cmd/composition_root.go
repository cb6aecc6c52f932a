package cmd

import (
	"io"

	"foodorder/internal/adapters/in/cli"
	"foodorder/internal/adapters/out/dispatch"
	"foodorder/internal/adapters/out/memory"
	"foodorder/internal/adapters/out/payment"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/merchant"
)

type CompositionRoot struct {
	configs Config
	in      io.Reader
	out     io.Writer

	catalog   *memory.Catalog
	gateway   *payment.Simulator
	deliverer *dispatch.Simulator
}

func NewCompositionRoot(configs Config, in io.Reader, out io.Writer) (CompositionRoot, error) {
	agent, err := courier.NewDeliveryAgent("Max")
	if err != nil {
		return CompositionRoot{}, err
	}

	catalog, err := seedCatalog(agent)
	if err != nil {
		return CompositionRoot{}, err
	}

	deliverer, err := dispatch.NewSimulator(agent, configs.CookingDelay, configs.DeliveryDelay, out)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:   configs,
		in:        in,
		out:       out,
		catalog:   catalog,
		gateway:   payment.NewSimulator(configs.PaymentDelay, configs.SimulateDecline, out),
		deliverer: deliverer,
	}, nil
}

func (c *CompositionRoot) CreateSearchMerchantsQueryHandler() queries.SearchMerchantsQueryHandler {
	return queries.NewSearchMerchantsQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.gateway, c.deliverer)
}

func (c *CompositionRoot) CreateSession() *cli.Session {
	return cli.NewSession(
		c.in,
		c.out,
		c.CreateSearchMerchantsQueryHandler(),
		c.CreateCheckoutCommandHandler(),
	)
}

func seedCatalog(agent *courier.DeliveryAgent) (*memory.Catalog, error) {
	chickenHouse, err := seedMerchant("Chicken House", agent, []seedItem{
		{"Fried", 17000},
		{"Seasoned", 18000},
		{"Half & Half", 18000},
	})
	if err != nil {
		return nil, err
	}

	goldenChicken, err := seedMerchant("Golden Chicken", agent, []seedItem{
		{"Crispy", 19000},
		{"Spicy Glazed", 20000},
	})
	if err != nil {
		return nil, err
	}

	chickenTown, err := seedMerchant("Chicken Town No.1", agent, []seedItem{
		{"Original Fried", 16000},
		{"Soy Garlic", 17000},
	})
	if err != nil {
		return nil, err
	}

	return memory.NewCatalog(chickenHouse, goldenChicken, chickenTown)
}

type seedItem struct {
	name  string
	price int
}

func seedMerchant(name string, agent *courier.DeliveryAgent, seeds []seedItem) (*merchant.Merchant, error) {
	items := make([]merchant.MenuItem, 0, len(seeds))
	for _, seed := range seeds {
		item, err := merchant.NewMenuItem(seed.name, seed.price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	menu, err := merchant.NewMenu(items)
	if err != nil {
		return nil, err
	}

	return merchant.NewMerchant(name, menu, agent)
}
