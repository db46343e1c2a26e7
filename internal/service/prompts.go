package service

import (
	"fmt"
	"stepwise_backend/internal/model"
	"strings"
)

const extractionSystemPrompt = `你是一个数学解题步骤提取专家。请仔细分析图片中的数学题目和解答过程，提取出清晰的解题步骤。每个步骤应该是一个独立的推理或计算过程。

同时完成：
1. 将题目原文完整转写到 problemText，并把英文译文写入 problemTextEn
2. 把题目直接给出的已知条件逐条写入 conditions，每条一个字符串
3. 数学公式使用 $...$ 包裹`

const extractionUserPrompt = "请从以下图片中提取题目、已知条件和解题步骤。"

const refreshTextsSystemPrompt = `你是一个数学题目识别专家。请识别图片中的数学题目，输出题目原文（中文）和对应的英文译文。

要求：
1. 只转写题目本身，不要包含解答
2. 数学公式使用 $...$ 包裹`

const refreshTextsUserPrompt = "请识别图片中的题目文字，并给出英文译文。"

const whySystemPrompt = `你是一位数学辅导老师。学生正在学习解题步骤，需要你解释为什么会得到当前这一步。

重要约束：
1. 只解释从上一两步到当前步骤的关键理由、公式或变形点
2. 控制在 1-4 句话以内
3. 不要把整道题完整讲完
4. 使用简洁的中文
5. 如果学生选中了特定文字，重点围绕选中部分解释`

const nextSystemPrompt = `你是一位数学辅导老师。学生正在学习解题步骤，需要你给出下一步的思考方向。

重要约束：
1. 只给下一步的思考方向或提示（例如用哪个定理、构造哪个量、代入哪个式子）
2. 不直接给出最终答案或完整解法
3. 控制在 1-4 句话以内
4. 使用简洁的中文
5. 如果学生选中了特定文字，围绕选中部分给提示`

const conditionSystemPrompt = `你是一位数学辅导老师。学生在阅读一道题的解答时点开了题目中的一个已知条件，想知道这个条件在解题中起什么作用。

重要约束：
1. 说明这个条件在哪些步骤中被用到、帮助推出了什么
2. 控制在 2-5 句话以内
3. 不要把整道题完整讲完
4. 使用简洁的中文
5. 数学公式用 $...$ 包裹`

const guidingSystemPrompt = `你是一位善用苏格拉底式提问的数学老师。请根据题目和完整解答，设计 3-5 个循序渐进的引导问题，让学生通过回答问题自己推导出解题思路，而不是直接告诉答案。

要求：
1. 问题按解题顺序排列，每个问题对应一个关键思路或步骤
2. 每个问题给出 3-4 个选项，只有一个正确，其余选项是有迷惑性的常见错误思路
3. correctIndex 为正确选项的下标，从 0 开始
4. explanation 用 1-2 句话说明正确选项为什么成立
5. 使用简洁的中文，数学公式用 $...$ 包裹`

func quoteSelected(b *strings.Builder, selectedText string) {
	if selectedText != "" {
		fmt.Fprintf(b, "\n\n学生选中的文字：\"%s\"", selectedText)
	}
}

// whyUserPrompt 只包含所选步骤及其前两步
func whyUserPrompt(steps model.Steps, index int, selectedText string) string {
	start := index - 2
	if start < 0 {
		start = 0
	}

	previous := make([]string, 0, index-start)
	for _, s := range steps[start:index] {
		previous = append(previous, s.Text)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "前面的步骤：\n%s\n\n当前步骤：%s", strings.Join(previous, "\n"), steps[index].Text)
	quoteSelected(&b, selectedText)
	b.WriteString("\n\n请简洁解释为什么会得到这一步（1-4句话）：")
	return b.String()
}

// nextUserPrompt 下一步仅作为参考提供给模型，并要求不要直接说出
func nextUserPrompt(steps model.Steps, index int, selectedText string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "当前步骤：%s", steps[index].Text)
	if index+1 < len(steps) {
		fmt.Fprintf(&b, "\n\n（参考：下一步是 \"%s\"，但不要直接说出来）", steps[index+1].Text)
	}
	quoteSelected(&b, selectedText)
	b.WriteString("\n\n请给出下一步的思考提示（1-4句话，不直接给答案）：")
	return b.String()
}

func conditionUserPrompt(steps model.Steps, conditions []string, condition string) string {
	var b strings.Builder
	if len(conditions) > 0 {
		b.WriteString("已知条件：\n")
		writeBullets(&b, conditions)
		b.WriteString("\n")
	}
	b.WriteString("解题步骤：\n")
	writeNumberedSteps(&b, steps)
	fmt.Fprintf(&b, "\n学生选中的条件：\"%s\"", condition)
	b.WriteString("\n\n请解释这个条件在解题中的作用（2-5句话）：")
	return b.String()
}

func guidingUserPrompt(problemText string, steps model.Steps, conditions []string) string {
	var b strings.Builder
	if problemText != "" {
		fmt.Fprintf(&b, "题目：%s\n\n", problemText)
	}
	if len(conditions) > 0 {
		b.WriteString("已知条件：\n")
		writeBullets(&b, conditions)
		b.WriteString("\n")
	}
	b.WriteString("解题步骤：\n")
	writeNumberedSteps(&b, steps)
	b.WriteString("\n请根据以上内容生成引导问题。")
	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

func writeNumberedSteps(b *strings.Builder, steps model.Steps) {
	for i, s := range steps {
		fmt.Fprintf(b, "%d. %s\n", i+1, s.Text)
	}
}
