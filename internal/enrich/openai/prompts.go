package openai

import "fmt"

func insightsPrompt(industry, summary string) string {
	prompt := fmt.Sprintf(`Please provide detailed insights about workflow automation in the %s industry. I need the following specific information:

1. A list of trending automation tools in this industry
2. Benchmarks for implementation time (in months), bottlenecks (as a percentage difficulty score), and success rate (as a percentage)
3. A brief case study of a company that successfully implemented workflow automation
4. The average automation level in this industry (as a percentage from 0-100)
5. The top automated processes in this industry
6. ROI information including typical timeframe for returns and average ROI percentage range

Format your response as structured data that can be parsed as JSON with the following structure:
{
  "industryName": string,
  "trendingTools": string[],
  "benchmarks": {
    "implementationTime": number,
    "bottlenecks": number,
    "successRatePercentage": number
  },
  "caseStudies": string[],
  "automationLevel": number,
  "topAutomatedProcesses": string[],
  "roi": {
    "timeframe": string,
    "averageReturn": string
  }
}`, industry)

	if summary != "" {
		prompt += "\n\nHere is a summary of a specific company in this industry that should inform your response:\n" + summary
	}
	return prompt
}

func toolsPrompt(industry, summary string) string {
	return fmt.Sprintf(`Based on the assessment data for a company in the %s industry, please recommend 3-5 specific workflow automation tools that would be most beneficial for them.

Assessment summary:
%s

For each tool, provide:
1. The name of the tool
2. A brief description of what it does
3. 2-4 specific use cases relevant to this company's needs
4. Information about the pricing model

Format your response as structured data that can be parsed as JSON with the following structure for each tool:
{
  "recommendedTools": [
    {
      "name": string,
      "description": string,
      "useCases": string[],
      "pricingModel": string
    }
  ]
}`, industry, summary)
}
