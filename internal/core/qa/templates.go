package qa

// questionTemplates are the default question phrasings, English first,
// then Telugu. The placeholder is substituted with the recipe name. One
// pair is emitted per template, so the default fan-out is twelve pairs
// per recipe.
var questionTemplates = []string{
	"How do I make %s?",
	"What's the recipe for %s?",
	"Can you tell me how to prepare %s?",
	"I want to cook %s. How?",
	"Give me the recipe for %s",
	"How to cook %s?",
	"What are the steps to make %s?",
	"Can you provide the %s recipe?",
	"%s ఎలా చేయాలి?",
	"%s రెసిపీ చెప్పండి",
	"%s ఎలా వండాలి?",
	"%s తయారీ విధానం చెప్పండి",
}

// Answer section headers and the measurements tip, kept in Telugu to
// match the training corpus.
const (
	ingredientsHeader = "📝 కావలసిన వస్తువులు:"
	stepsHeader       = "👩‍🍳 తయారీ విధానం:"
	measurementsTip   = "💡 చిట్కా: కచ్చితమైన కొలతలను అనుసరించండి మంచి రుచికి."
)
