// Package web holds the embedded chat UI served when no HTML file is
// present on disk.
package web

const ChatUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Ohio State AI Assistant</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            height: 100vh;
            display: flex;
            justify-content: center;
            align-items: center;
            padding: 10px;
        }

        .chat-container {
            width: 100%;
            max-width: 800px;
            height: 90vh;
            background: white;
            border-radius: 12px;
            box-shadow: 0 20px 60px rgba(0, 0, 0, 0.3);
            display: flex;
            flex-direction: column;
            overflow: hidden;
        }

        .chat-header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 20px;
            text-align: center;
            font-size: 20px;
            font-weight: 600;
        }

        .messages-container {
            flex: 1;
            overflow-y: auto;
            padding: 20px;
            background: #f5f5f5;
        }

        .welcome-content {
            text-align: center;
            color: #666;
            padding: 20px;
        }

        .welcome-content h2 {
            color: #667eea;
            margin-bottom: 10px;
        }

        .suggested-questions {
            display: grid;
            grid-template-columns: 1fr 1fr;
            gap: 12px;
            margin-top: 30px;
            max-width: 600px;
            margin-left: auto;
            margin-right: auto;
        }

        .question-btn {
            background: white;
            border: 2px solid #667eea;
            border-radius: 8px;
            padding: 12px 16px;
            cursor: pointer;
            font-size: 13px;
            color: #667eea;
            font-weight: 500;
            transition: all 0.2s;
        }

        .question-btn:hover {
            background: #667eea;
            color: white;
            transform: translateY(-2px);
        }

        .message {
            margin-bottom: 16px;
            animation: slideIn 0.3s ease-in-out;
        }

        @keyframes slideIn {
            from { opacity: 0; transform: translateY(10px); }
            to { opacity: 1; transform: translateY(0); }
        }

        .message.user {
            display: flex;
            justify-content: flex-end;
        }

        .message.assistant {
            display: flex;
            justify-content: flex-start;
        }

        .message-content {
            max-width: 70%;
            padding: 12px 16px;
            border-radius: 12px;
            font-size: 14px;
            line-height: 1.5;
        }

        .user .message-content {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
        }

        .assistant .message-content {
            background: white;
            color: #333;
            border: 1px solid #e0e0e0;
            max-width: 90%;
        }

        .code-block {
            background: #1e1e1e;
            color: #d4d4d4;
            padding: 12px;
            border-radius: 6px;
            margin: 8px 0;
            font-family: 'Courier New', monospace;
            font-size: 12px;
            overflow-x: auto;
            white-space: pre-wrap;
            word-wrap: break-word;
            border-left: 4px solid #667eea;
        }

        .code-lang {
            color: #858585;
            font-size: 11px;
            margin-bottom: 8px;
            padding-bottom: 8px;
            border-bottom: 1px solid #444;
            display: block;
        }

        .input-container {
            padding: 16px 20px;
            background: white;
            border-top: 1px solid #e0e0e0;
            display: flex;
            gap: 10px;
        }

        .input-wrapper {
            flex: 1;
            display: flex;
            gap: 8px;
            background: #f5f5f5;
            border-radius: 24px;
            padding: 10px 16px;
        }

        #messageInput {
            flex: 1;
            border: none;
            background: transparent;
            outline: none;
            font-size: 14px;
            font-family: inherit;
        }

        .send-button {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            border: none;
            border-radius: 50%;
            width: 32px;
            height: 32px;
            cursor: pointer;
            font-weight: bold;
        }

        .send-button:hover { opacity: 0.9; }
        .send-button:disabled { opacity: 0.5; cursor: not-allowed; }

        .status-message {
            color: #667eea;
            font-size: 12px;
            font-style: italic;
            margin-top: 4px;
        }

        .follow-up-questions {
            margin-top: 16px;
            padding: 12px;
            background: #f0f4ff;
            border-radius: 8px;
            animation: slideIn 0.3s ease-in-out;
        }

        .follow-up-btn {
            background: white;
            border: 1px solid #667eea;
            color: #667eea;
            padding: 8px 12px;
            border-radius: 6px;
            font-size: 12px;
            cursor: pointer;
            transition: all 0.2s;
            text-align: left;
            font-weight: 500;
        }

        .follow-up-btn:hover {
            background: #667eea;
            color: white;
            transform: translateX(4px);
        }
    </style>
</head>
<body>
    <div class="chat-container">
        <div class="chat-header">Ohio State AI Assistant</div>
        <div class="messages-container" id="messagesContainer">
            <div class="welcome-content">
                <h2>Welcome to OSU Assistant!</h2>
                <p>Get instant answers about classes, registration, tuition, and more.</p>
                <div class="suggested-questions">
                    <button class="question-btn" onclick="askQuestion('When is tuition due?')">When is tuition due?</button>
                    <button class="question-btn" onclick="askQuestion('How do I register for classes?')">How do I register?</button>
                    <button class="question-btn" onclick="askQuestion('What is the add/drop deadline?')">Add/Drop deadline?</button>
                    <button class="question-btn" onclick="askQuestion('When does the semester start?')">Semester start date?</button>
                    <button class="question-btn" onclick="askQuestion('How do I access BuckeyeLink?')">BuckeyeLink access?</button>
                    <button class="question-btn" onclick="askQuestion('What are the refund deadlines?')">Refund deadlines?</button>
                </div>
            </div>
        </div>
        <div class="input-container">
            <div class="input-wrapper">
                <input type="text" id="messageInput" placeholder="Ask about OSU, registration, tuition..." />
                <button class="send-button" onclick="sendMessage()">Send</button>
            </div>
        </div>
    </div>

    <script>
        const messageInput = document.getElementById('messageInput');
        const messagesContainer = document.getElementById('messagesContainer');
        let isWelcomeVisible = true;

        // Helper functions - MUST BE DEFINED FIRST
        var codeBlockMarker = String.fromCharCode(96, 96, 96);

        function escapeHtml(unsafe) {
            var div = document.createElement('div');
            div.textContent = unsafe;
            return div.innerHTML;
        }

        function formatCodeBlocks(text) {
            if (text.indexOf(codeBlockMarker) === -1) return escapeHtml(text);

            var parts = text.split(codeBlockMarker);
            var result = '';
            var newline = String.fromCharCode(10);

            for (var i = 0; i < parts.length; i++) {
                if (i % 2 === 0) {
                    result += escapeHtml(parts[i]);
                } else {
                    var block = parts[i];
                    var lines = block.split(newline);
                    var lang = 'code';
                    var code = block;

                    if (lines.length > 0 && lines[0].trim().length > 0) {
                        var firstLine = lines[0].trim();
                        if (/^[a-z0-9]+$/.test(firstLine)) {
                            lang = firstLine;
                            code = lines.slice(1).join(newline);
                        }
                    }

                    result += '<div class="code-block">';
                    if (lang !== 'code') {
                        result += '<div class="code-lang">' + escapeHtml(lang) + '</div>';
                    }
                    result += '<pre><code>' + escapeHtml(code.trim()) + '</code></pre>';
                    result += '</div>';
                }
            }
            return result;
        }

        function addMessage(content, role) {
            var messageDiv = document.createElement('div');
            messageDiv.className = 'message ' + role;

            var contentDiv = document.createElement('div');
            contentDiv.className = 'message-content';

            if (role === 'assistant' && content.indexOf(codeBlockMarker) !== -1) {
                contentDiv.innerHTML = formatCodeBlocks(content);
            } else {
                contentDiv.textContent = content;
            }

            messageDiv.appendChild(contentDiv);
            messagesContainer.appendChild(messageDiv);
            messagesContainer.scrollTop = messagesContainer.scrollHeight;
        }

        function addStatusMessage(status) {
            const statusDiv = document.createElement('div');
            statusDiv.id = 'statusMessage';
            statusDiv.className = 'status-message';
            statusDiv.textContent = status;
            messagesContainer.appendChild(statusDiv);
            messagesContainer.scrollTop = messagesContainer.scrollHeight;
        }

        function removeStatusMessage() {
            const status = document.getElementById('statusMessage');
            if (status) status.remove();
        }

        function askQuestion(question) {
            messageInput.value = question;
            sendMessage();
        }

        function getFollowUpQuestions(topic) {
            const questions = followUpQuestions[topic] || followUpQuestions.general;
            const shuffled = [...questions].sort(() => Math.random() - 0.5);
            return shuffled.slice(0, 3);
        }

        function detectTopicType(userMessage) {
            const msg = userMessage.toLowerCase();
            const osuKeywords = ['osu', 'buckeye', 'class', 'registration', 'tuition', 'fee', 'deadline', 'semester', 'drop', 'add', 'refund', 'payment', 'buckeyelink'];
            const techKeywords = ['python', 'javascript', 'docker', 'kubernetes', 'git', 'api', 'database', 'code', 'function', 'debug', 'error', 'devops', 'cloud', 'aws'];

            if (osuKeywords.some(kw => msg.includes(kw))) return 'osu';
            if (techKeywords.some(kw => msg.includes(kw))) return 'technical';
            return 'general';
        }

        async function sendMessage() {
            const message = messageInput.value.trim();
            if (!message) return;

            messageInput.value = '';

            if (isWelcomeVisible) {
                messagesContainer.innerHTML = '';
                isWelcomeVisible = false;
            }

            addMessage(message, 'user');
            addStatusMessage('Connecting to AI Agent...');

            try {
                const startTime = Date.now();
                const response = await fetch('/chat', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ message: message })
                });

                const data = await response.json();
                const elapsed = ((Date.now() - startTime) / 1000).toFixed(1);

                removeStatusMessage();
                addMessage(data.response, 'assistant');
                addStatusMessage('Response received in ' + elapsed + 's');

                lastQuestionType = detectTopicType(message);
                const followUps = getFollowUpQuestions(lastQuestionType);
                setTimeout(() => {
                    addFollowUpQuestions(followUps);
                }, 1500);

                setTimeout(removeStatusMessage, 3000);
            } catch (error) {
                removeStatusMessage();
                addMessage('Error: ' + error.message, 'assistant');
            }
        }

        // Sample follow-up questions by topic
        const followUpQuestions = {
            osu: [
                "What is BuckeyeLink?",
                "How do I request a transcript?",
                "What is the GPA requirement?",
                "How do I appeal a grade?"
            ],
            technical: [
                "Can you explain this better?",
                "What are best practices?",
                "How do I debug this?",
                "What is the difference between...?"
            ],
            general: [
                "Tell me more about this",
                "Can you explain that differently?",
                "What are the pros and cons?",
                "How does it work?"
            ]
        };

        let lastQuestionType = "general";

        function addFollowUpQuestions(questions) {
            const followUpDiv = document.createElement('div');
            followUpDiv.className = 'follow-up-questions';
            followUpDiv.innerHTML = '<div style="font-size: 12px; color: #999; margin-bottom: 8px; font-weight: 500;">Follow-up questions:</div>';

            const buttonContainer = document.createElement('div');
            buttonContainer.style.display = 'flex';
            buttonContainer.style.flexDirection = 'column';
            buttonContainer.style.gap = '6px';

            questions.forEach(q => {
                const btn = document.createElement('button');
                btn.className = 'follow-up-btn';
                btn.textContent = q;
                btn.onclick = () => askQuestion(q);
                buttonContainer.appendChild(btn);
            });

            followUpDiv.appendChild(buttonContainer);
            messagesContainer.appendChild(followUpDiv);
            messagesContainer.scrollTop = messagesContainer.scrollHeight;
        }

        messageInput.addEventListener('keypress', (e) => {
            if (e.key === 'Enter') {
                e.preventDefault();
                sendMessage();
            }
        });

        messageInput.focus();
    </script>
</body>
</html>`
