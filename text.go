package main

var (
	NeofetchLogo = `  ██████╗ ██╗
  ██╔══██╗██║
  ██████╔╝██║
  ██╔══██╗██║
  ██║  ██║███████╗
  ╚═╝  ╚═╝╚══════╝`

	MarketBanner = `
 ███╗   ███╗ █████╗ ██████╗ ██╗  ██╗███████╗████████╗
 ████╗ ████║██╔══██╗██╔══██╗██║ ██╔╝██╔════╝╚══██╔══╝
 ██╔████╔██║███████║██████╔╝█████╔╝ █████╗     ██║
 ██║╚██╔╝██║██╔══██║██╔══██╗██╔═██╗ ██╔══╝     ██║
 ██║ ╚═╝ ██║██║  ██║██║  ██║██║  ██╗███████╗   ██║
 ╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝   ╚═╝`

	MarketIntro = `Buy shares in companies to unlock work experience and roles.
Start with paper trading capital and watch your net worth grow.`

	MarketDisclaimer = `The share prices are fictional and for demonstration purposes only.`

	HelpTip = `Tip: Use ↑↓ arrows for history, Tab for autocomplete`
)
